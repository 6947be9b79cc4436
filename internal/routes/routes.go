package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	"github.com/navalha-app/booking-api/internal/config"
	"github.com/navalha-app/booking-api/internal/handlers"
	infraRepo "github.com/navalha-app/booking-api/internal/infra/repository"
	"github.com/navalha-app/booking-api/internal/middleware"
	"github.com/navalha-app/booking-api/internal/timezone"
	ucAppointment "github.com/navalha-app/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	shopClock := clock.ForShop(timezone.DefaultTimezone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	publicLimiter := middleware.NewRateLimiter(rdb, 30, time.Minute, "public")

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	getServicesUC := ucAppointment.NewGetServices(appointmentRepo)

	getSlotsUC := ucAppointment.NewGetAvailableSlots(
		appointmentRepo,
		shopClock,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	createGuestAppointmentUC := ucAppointment.NewCreateGuestAppointment(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	cancelByClientUC := ucAppointment.NewCancelByClient(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	cancelByGuestUC := ucAppointment.NewCancelByGuest(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	cancelByBarberUC := ucAppointment.NewCancelByBarber(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	markNoShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		shopClock,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		getServicesUC,
		getSlotsUC,
		createGuestAppointmentUC,
		cancelByGuestUC,
		listAppointmentsUC,
	)

	clientHandler := handlers.NewClientHandler(
		createAppointmentUC,
		cancelByClientUC,
		listAppointmentsUC,
	)

	barberHandler := handlers.NewBarberHandler(
		db,
		cancelByBarberUC,
		markNoShowUC,
		completeUC,
		listAppointmentsUC,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	shopScheduleHandler := handlers.NewShopScheduleHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (convidado)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(publicLimiter.Middleware())
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments", publicHandler.ListAppointments)
			publicAPI.PATCH("/appointments/:id/cancel", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.RegisterClient)
		api.POST("/auth/login", authHandler.LoginClient)
		api.POST("/auth/barber/login", authHandler.LoginBarber)

		// ------------------------------
		// 🔐 CLIENTE AUTENTICADO
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg, middleware.RoleClient))
		{
			me.POST("/appointments", clientHandler.CreateAppointment)
			me.GET("/appointments", clientHandler.ListAppointments)
			me.PATCH("/appointments/:id/cancel", clientHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 BARBEIRO
		// ------------------------------
		barber := api.Group("/barber")
		barber.Use(middleware.AuthMiddleware(cfg, middleware.RoleBarber))
		{
			barber.GET("/appointments", barberHandler.ListAppointments)
			barber.PATCH("/appointments/:id/cancel", barberHandler.CancelAppointment)
			barber.PATCH("/appointments/:id/no-show", barberHandler.MarkNoShow)
			barber.PATCH("/appointments/:id/complete", barberHandler.CompleteAppointment)

			barber.GET("/working-hours", workingHoursHandler.Get)
			barber.PUT("/working-hours", workingHoursHandler.Update)

			barber.GET("/shop-hours", shopScheduleHandler.GetHours)
			barber.PUT("/shop-hours", shopScheduleHandler.UpdateHours)

			barber.GET("/closures", shopScheduleHandler.ListClosures)
			barber.POST("/closures", shopScheduleHandler.CreateClosure)
			barber.DELETE("/closures/:id", shopScheduleHandler.DeleteClosure)

			barber.GET("/absences", shopScheduleHandler.ListAbsences)
			barber.POST("/absences", shopScheduleHandler.CreateAbsence)
			barber.DELETE("/absences/:id", shopScheduleHandler.DeleteAbsence)

			barber.GET("/services", serviceHandler.List)
			barber.POST("/services", serviceHandler.Create)
			barber.PATCH("/services/:id", serviceHandler.Update)
			barber.POST("/services/:id/assign", serviceHandler.Assign)
			barber.DELETE("/services/:id/assign", serviceHandler.Unassign)

			barber.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
