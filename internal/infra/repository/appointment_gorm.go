package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShop(
	ctx context.Context,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		First(&service, serviceID).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) ListActiveServices(
	ctx context.Context,
	barberID *uint,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("services.active = true")

	if barberID != nil {
		q = q.Joins(
			"JOIN barber_services ON barber_services.service_id = services.id AND barber_services.barber_id = ?",
			*barberID,
		)
	}

	var services []models.Service
	if err := q.Order("services.id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Agenda (policy inputs)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShopHours(
	ctx context.Context,
	weekday int,
) (*models.ShopHours, error) {

	var sh models.ShopHours
	if err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&sh).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *AppointmentGormRepository) ListShopClosures(
	ctx context.Context,
	date time.Time,
) ([]models.ShopClosure, error) {

	var closures []models.ShopClosure
	if err := r.db.WithContext(ctx).
		Where("date = ?", dateOnly(date)).
		Find(&closures).Error; err != nil {
		return nil, err
	}
	return closures, nil
}

func (r *AppointmentGormRepository) ListBarberAbsences(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.BarberAbsence, error) {

	var absences []models.BarberAbsence
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, dateOnly(date)).
		Find(&absences).Error; err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) ListConfirmedAppointments(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"barber_id = ? AND date = ? AND status = ?",
			barberID, dateOnly(date), string(domain.StatusConfirmed),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Booking (transação)
// --------------------------------------------------

// CreateAppointmentAtomic garante o invariante central: a
// re-verificação de sobreposição e o insert rodam na mesma transação.
// A linha do barbeiro é travada com SELECT ... FOR UPDATE antes do
// re-check, serializando os agendamentos daquele barbeiro — um lock
// só nos agendamentos existentes não bloquearia dois inserts
// simultâneos em um dia ainda vazio. Duas requisições para a mesma
// faixa serializam aqui e exatamente uma recebe slot_occupied.
// A comparação em "HH:MM" é lexicográfica, válida porque o formato é
// zero-padded.
func (r *AppointmentGormRepository) CreateAppointmentAtomic(
	ctx context.Context,
	ap *models.Appointment,
	guest *models.GuestClient,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var barber models.User
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&barber, ap.BarberID).Error; err != nil {
			return err
		}

		if guest != nil {
			// INSERT ... ON CONFLICT (phone) DO UPDATE: o telefone é a
			// identidade do convidado, e dois agendamentos simultâneos
			// com o mesmo telefone novo podem travar barbeiros
			// diferentes — um find-then-create estouraria a unique em
			// vez de reaproveitar a linha.
			if err := tx.
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "phone"}},
					DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
				}).
				Create(guest).Error; err != nil {
				return err
			}

			ap.GuestClientID = &guest.ID
		}

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND date = ? AND status = ? AND start_time < ? AND end_time > ?",
				ap.BarberID,
				dateOnly(ap.Date),
				string(domain.StatusConfirmed),
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotOccupied)
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Leitura / mutação pontual
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("GuestClient").
		Preload("Barber").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) FindGuestByPhone(
	ctx context.Context,
	phone string,
) (*models.GuestClient, error) {

	var guest models.GuestClient
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *AppointmentGormRepository) ListClientAppointments(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListGuestAppointments(
	ctx context.Context,
	guestClientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("guest_client_id = ?", guestClientID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListBarberAppointments(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("GuestClient").
		Preload("Service").
		Where(
			"barber_id = ? AND date >= ? AND date < ?",
			barberID, dateOnly(start), dateOnly(end),
		).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
