package appointment

import (
	"context"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

type MarkNoShow struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// Execute marca falta: só agendamento confirmado cujo horário de fim
// já passou.
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if ap.BarberID != barberID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if domain.Status(ap.Status) != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotCancellable)
	}

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if now.Before(domain.EndAt(ap, shopLocation(shop))) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFinished)
	}

	if err := domain.MarkNoShow(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: "barber",
		ActorID:   &barberID,
		Action:    "appointment_no_show",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
