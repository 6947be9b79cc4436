package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/models"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
	"github.com/navalha-app/booking-api/internal/validators"
)

// ======================================================
// HANDLER PÚBLICO (fluxo de convidado, sem login)
// ======================================================

type PublicHandler struct {
	db *gorm.DB

	getServices  *ucAppointment.GetServices
	getSlots     *ucAppointment.GetAvailableSlots
	createGuest  *ucAppointment.CreateGuestAppointment
	cancelGuest  *ucAppointment.CancelByGuest
	listForGuest *ucAppointment.ListAppointments
}

func NewPublicHandler(
	db *gorm.DB,
	getServices *ucAppointment.GetServices,
	getSlots *ucAppointment.GetAvailableSlots,
	createGuest *ucAppointment.CreateGuestAppointment,
	cancelGuest *ucAppointment.CancelByGuest,
	listForGuest *ucAppointment.ListAppointments,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		getServices:  getServices,
		getSlots:     getSlots,
		createGuest:  createGuest,
		cancelGuest:  cancelGuest,
		listForGuest: listForGuest,
	}
}

// ======================================================
// DTOs
// ======================================================

type GuestCreateAppointmentRequest struct {
	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone" binding:"required"`
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:MM
}

type GuestCancelRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var barberID *uint
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		v := uint(id)
		barberID = &v
	}

	services, err := h.getServices.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Select("id", "name", "phone").
		Where("active = true AND role = 'barber'").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || barberIDStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, barbeiro e serviço são obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE (convidado)
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req GuestCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.GuestPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.createGuest.Execute(
		c.Request.Context(),
		ucAppointment.CreateGuestAppointmentInput{
			CreateAppointmentInput: ucAppointment.CreateAppointmentInput{
				BarberID:  req.BarberID,
				ServiceID: req.ServiceID,
				Date:      req.Date,
				Time:      req.Time,
			},
			GuestName:  req.GuestName,
			GuestPhone: req.GuestPhone,
		},
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

// ======================================================
// LIST / CANCEL (convidado, por telefone)
// ======================================================

func (h *PublicHandler) ListAppointments(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Telefone obrigatório.")
		return
	}

	apps, err := h.listForGuest.ForGuest(c.Request.Context(), phone)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Agendamento inválido.")
		return
	}

	var req GuestCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancelGuest.Execute(c.Request.Context(), uint(id), req.Phone)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, ap)
}
