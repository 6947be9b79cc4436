package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/middleware"
	"github.com/navalha-app/booking-api/internal/models"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER DO BARBEIRO (agenda)
// ======================================================

type BarberHandler struct {
	db *gorm.DB

	cancel   *ucAppointment.CancelByBarber
	noShow   *ucAppointment.MarkNoShow
	complete *ucAppointment.CompleteAppointment
	list     *ucAppointment.ListAppointments
}

func NewBarberHandler(
	db *gorm.DB,
	cancel *ucAppointment.CancelByBarber,
	noShow *ucAppointment.MarkNoShow,
	complete *ucAppointment.CompleteAppointment,
	list *ucAppointment.ListAppointments,
) *BarberHandler {
	return &BarberHandler{
		db:       db,
		cancel:   cancel,
		noShow:   noShow,
		complete: complete,
		list:     list,
	}
}

type BarberCancelRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// LIST (intervalo inclusivo nas duas pontas)
// ======================================================

func (h *BarberHandler) ListAppointments(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "Informe start e end (YYYY-MM-DD).")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	start, err := parseDateInShop(&shop, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "Data inicial inválida.")
		return
	}

	end, err := parseDateInShop(&shop, endStr)
	if err != nil || end.Before(start) {
		httperr.BadRequest(c, "invalid_end", "Data final inválida.")
		return
	}

	rows, err := h.list.ForBarber(c.Request.Context(), barberID, start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// CANCEL / NO-SHOW / COMPLETE
// ======================================================

func (h *BarberHandler) CancelAppointment(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var req BarberCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), uint(id), barberID, req.Reason)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *BarberHandler) MarkNoShow(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), uint(id), barberID)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_mark_no_show", "Erro ao marcar falta.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *BarberHandler) CompleteAppointment(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), uint(id), barberID)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
		return
	}

	httpresp.OK(c, ap)
}
