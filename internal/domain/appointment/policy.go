package appointment

import "time"

// Janela do aviso de cancelamento em cima da hora.
const LateCancellationWindow = 2 * time.Hour

// CanClientCancel é a permissão dura do cliente cadastrado: só o dia
// conta — o agendamento não pode estar em um dia já passado
// (horário da barbearia). O aviso de 2h é um sinal independente e
// não bloqueia.
func CanClientCancel(now, appointmentDate time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(
		appointmentDate.Year(), appointmentDate.Month(), appointmentDate.Day(),
		0, 0, 0, 0, now.Location(),
	)
	return !day.Before(today)
}

// ShouldWarnLateCancellation sinaliza cancelamento em cima da hora:
// faltam 2h ou menos para o início. Alimenta um aviso na UI, nunca
// rejeita o cancelamento.
func ShouldWarnLateCancellation(now, startAt time.Time) bool {
	return startAt.Sub(now) <= LateCancellationWindow
}

// CanGuestCancel é o caminho mais estrito do convidado: bloqueia a
// partir do horário de início, não só do dia.
func CanGuestCancel(now, startAt time.Time) bool {
	return now.Before(startAt)
}
