package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/navalha-app/booking-api/internal/httperr"
)

// Mensagens de usuário por código de negócio. O código sempre sobe
// intacto; só a mensagem é traduzida aqui.
var businessMessages = map[string]string{
	httperr.CodeServiceNotFound:           "Serviço não encontrado.",
	httperr.CodeSlotInPast:                "Esse horário já passou.",
	httperr.CodeSlotUnavailable:           "Horário indisponível.",
	httperr.CodeBarberUnavailable:         "O barbeiro não atende nesse horário.",
	httperr.CodeShopClosed:                "A barbearia está fechada nesse horário.",
	httperr.CodeSlotOccupied:              "Esse horário acabou de ser ocupado.",
	httperr.CodeAppointmentNotFound:       "Agendamento não encontrado.",
	httperr.CodeUnauthorized:              "Você não tem permissão para essa ação.",
	httperr.CodeAppointmentNotCancellable: "Esse agendamento não pode mais ser alterado.",
	httperr.CodeAppointmentInPast:         "Esse agendamento já passou.",
	httperr.CodeAppointmentNotFinished:    "Esse agendamento ainda não terminou.",
	httperr.CodeGuestNotFound:             "Nenhum agendamento encontrado para esse telefone.",
	httperr.CodeCancelReasonRequired:      "Informe o motivo do cancelamento.",
}

func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	msg := businessMessages[code]

	switch code {
	case httperr.CodeAppointmentNotFound, httperr.CodeGuestNotFound:
		httperr.NotFound(c, code, msg)
	case httperr.CodeUnauthorized:
		httperr.Forbidden(c, code, msg)
	case httperr.CodeSlotOccupied:
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}

	return true
}
