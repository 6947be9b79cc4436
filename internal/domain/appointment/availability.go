package appointment

import "time"

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

// TimeSlot é um candidato da grade com a flag de disponibilidade.
// O fim do slot é sempre recomputável a partir da duração do serviço
// e por isso não é devolvido aqui.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
