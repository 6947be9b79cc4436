package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/domain/schedule"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/httpresp"
	"github.com/navalha-app/booking-api/internal/middleware"
	"github.com/navalha-app/booking-api/internal/models"
)

// ======================================================
// AGENDA DA BARBEARIA (funcionamento, fechamentos, ausências)
// ======================================================

type ShopScheduleHandler struct {
	db *gorm.DB
}

func NewShopScheduleHandler(db *gorm.DB) *ShopScheduleHandler {
	return &ShopScheduleHandler{db: db}
}

// --------- Funcionamento semanal ---------

type ShopDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsOpen     bool   `json:"is_open"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type ShopHoursUpdateRequest struct {
	Days []ShopDayConfig `json:"days" binding:"required"`
}

func (h *ShopScheduleHandler) GetHours(c *gin.Context) {
	var hours []models.ShopHours
	if err := h.db.Order("weekday ASC").Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_shop_hours", "Erro ao buscar funcionamento.")
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *ShopScheduleHandler) UpdateHours(c *gin.Context) {
	var req ShopHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		if !d.IsOpen {
			continue
		}
		if _, err := schedule.NewRange(d.StartTime, d.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time_range", "Faixa de horário inválida.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ShopHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.ShopHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.ShopHours{
				Weekday:    d.Weekday,
				IsOpen:     d.IsOpen,
				StartTime:  d.StartTime,
				EndTime:    d.EndTime,
				BreakStart: d.BreakStart,
				BreakEnd:   d.BreakEnd,
			})
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_shop_hours", "Erro ao salvar funcionamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Fechamentos ---------

type ClosureRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

func (h *ShopScheduleHandler) ListClosures(c *gin.Context) {
	var closures []models.ShopClosure
	if err := h.db.Order("date ASC").Find(&closures).Error; err != nil {
		httperr.Internal(c, "failed_to_list_closures", "Erro ao listar fechamentos.")
		return
	}
	httpresp.List(c, closures)
}

func (h *ShopScheduleHandler) CreateClosure(c *gin.Context) {
	var req ClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// faixa parcial precisa das duas pontas; vazias = dia inteiro
	if (req.StartTime == "") != (req.EndTime == "") {
		httperr.BadRequest(c, "invalid_time_range", "Informe início e fim, ou nenhum dos dois.")
		return
	}
	if req.StartTime != "" {
		if _, err := schedule.NewRange(req.StartTime, req.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time_range", "Faixa de horário inválida.")
			return
		}
	}

	closure := models.ShopClosure{
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&closure).Error; err != nil {
		httperr.Internal(c, "failed_to_create_closure", "Erro ao criar fechamento.")
		return
	}

	httpresp.Created(c, closure)
}

func (h *ShopScheduleHandler) DeleteClosure(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Fechamento inválido.")
		return
	}

	if err := h.db.Delete(&models.ShopClosure{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_closure", "Erro ao remover fechamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Ausências do barbeiro ---------

func (h *ShopScheduleHandler) ListAbsences(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var absences []models.BarberAbsence
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Find(&absences).Error; err != nil {
		httperr.Internal(c, "failed_to_list_absences", "Erro ao listar ausências.")
		return
	}
	httpresp.List(c, absences)
}

func (h *ShopScheduleHandler) CreateAbsence(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if (req.StartTime == "") != (req.EndTime == "") {
		httperr.BadRequest(c, "invalid_time_range", "Informe início e fim, ou nenhum dos dois.")
		return
	}
	if req.StartTime != "" {
		if _, err := schedule.NewRange(req.StartTime, req.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time_range", "Faixa de horário inválida.")
			return
		}
	}

	absence := models.BarberAbsence{
		BarberID:  barberID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&absence).Error; err != nil {
		httperr.Internal(c, "failed_to_create_absence", "Erro ao criar ausência.")
		return
	}

	httpresp.Created(c, absence)
}

func (h *ShopScheduleHandler) DeleteAbsence(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Ausência inválida.")
		return
	}

	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		Delete(&models.BarberAbsence{}).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_absence", "Erro ao remover ausência.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
