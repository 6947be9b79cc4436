package appointment

import "github.com/navalha-app/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed         Status = "confirmed"
	StatusCancelledByClient Status = "cancelled_by_client"
	StatusCancelledByBarber Status = "cancelled_by_barber"
	StatusCompleted         Status = "completed"
	StatusNoShow            Status = "no_show"
)

// Terminal: nenhuma transição sai destes estados.
func (s Status) Terminal() bool {
	switch s {
	case StatusCancelledByClient, StatusCancelledByBarber, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transições
// ===============================

// CanTransition valida a máquina de estados: confirmed é o único
// estado não terminal e só transita para os quatro estados finais.
// É o ponto único de validação usado por todos os fluxos de
// cancelamento, conclusão e no-show.
func CanTransition(from, to Status) error {
	if from != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotCancellable)
	}
	if !to.Terminal() {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotCancellable)
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
