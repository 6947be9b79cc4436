package appointment

import (
	"context"
	"time"

	"github.com/navalha-app/booking-api/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetShop(ctx context.Context) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
		barberID *uint,
	) ([]models.Service, error)

	// -------- Agenda (policy inputs) --------
	GetShopHours(
		ctx context.Context,
		weekday int,
	) (*models.ShopHours, error)

	ListShopClosures(
		ctx context.Context,
		date time.Time,
	) ([]models.ShopClosure, error)

	ListBarberAbsences(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.BarberAbsence, error)

	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListConfirmedAppointments(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Booking (transacional) --------

	// CreateAppointmentAtomic roda em uma única transação: upsert do
	// convidado (quando guest != nil), re-verificação de sobreposição
	// com lock de linha e insert. slot_occupied só nasce aqui.
	CreateAppointmentAtomic(
		ctx context.Context,
		ap *models.Appointment,
		guest *models.GuestClient,
	) error

	// -------- Leitura / mutação pontual --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindGuestByPhone(
		ctx context.Context,
		phone string,
	) (*models.GuestClient, error)

	ListClientAppointments(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListGuestAppointments(
		ctx context.Context,
		guestClientID uint,
	) ([]models.Appointment, error)

	ListBarberAppointments(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
