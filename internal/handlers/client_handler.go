package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/middleware"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER DO CLIENTE AUTENTICADO
// ======================================================

type ClientHandler struct {
	create *ucAppointment.CreateAppointment
	cancel *ucAppointment.CancelByClient
	list   *ucAppointment.ListAppointments
}

func NewClientHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelByClient,
	list *ucAppointment.ListAppointments,
) *ClientHandler {
	return &ClientHandler{
		create: create,
		cancel: cancel,
		list:   list,
	}
}

type ClientCreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:MM
}

func (h *ClientHandler) CreateAppointment(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClientCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BarberID:  req.BarberID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			Time:      req.Time,
		},
		clientID,
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

func (h *ClientHandler) ListAppointments(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	apps, err := h.list.ForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *ClientHandler) CancelAppointment(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	result, err := h.cancel.Execute(c.Request.Context(), uint(id), clientID)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, result)
}
