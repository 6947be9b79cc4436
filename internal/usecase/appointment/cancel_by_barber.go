package appointment

import (
	"context"
	"strings"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

type CancelByBarber struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCancelByBarber(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CancelByBarber {
	return &CancelByBarber{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

func (uc *CancelByBarber) Execute(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
	reason string,
) (*models.Appointment, error) {

	// O motivo vem antes de qualquer outra checagem.
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, httperr.ErrBusiness(httperr.CodeCancelReasonRequired)
	}

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

	now := uc.clock.Now()
	if err := domain.Cancel(ap, domain.StatusCancelledByBarber, now); err != nil {
		return nil, err
	}
	ap.CancelReason = reason

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: "barber",
		ActorID:   &barberID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata:  map[string]any{"reason": reason},
	})

	return ap, nil
}
