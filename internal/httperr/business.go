package httperr

import "errors"

// Códigos de negócio do fluxo de agendamento. Cada pré-condição
// violada tem exatamente um código; a camada HTTP traduz para
// mensagem de usuário.
const (
	// agendamento (validação / conflito)
	CodeServiceNotFound   = "service_not_found"
	CodeSlotInPast        = "slot_in_past"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeBarberUnavailable = "barber_unavailable"
	CodeShopClosed        = "shop_closed"
	CodeSlotOccupied      = "slot_occupied"

	// cancelamento / no-show
	CodeAppointmentNotFound       = "appointment_not_found"
	CodeUnauthorized              = "unauthorized"
	CodeAppointmentNotCancellable = "appointment_not_cancellable"
	CodeAppointmentInPast         = "appointment_in_past"
	CodeAppointmentNotFinished    = "appointment_not_finished"
	CodeGuestNotFound             = "guest_not_found"
	CodeCancelReasonRequired      = "cancellation_reason_required"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
