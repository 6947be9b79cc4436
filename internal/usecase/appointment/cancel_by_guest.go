package appointment

import (
	"context"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/validators"
)

type CancelByGuest struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCancelByGuest(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CancelByGuest {
	return &CancelByGuest{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// Execute cancela pelo telefone do convidado. O corte de tempo aqui
// é mais estrito que o do cliente cadastrado: a partir do horário de
// início o cancelamento é negado, não só a partir do dia seguinte.
func (uc *CancelByGuest) Execute(
	ctx context.Context,
	appointmentID uint,
	phone string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	guest, err := uc.repo.FindGuestByPhone(ctx, validators.NormalizePhone(phone))
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeGuestNotFound)
	}

	owner, ok := domain.OwnerOf(ap)
	if !ok || owner.Kind != domain.OwnerGuest || owner.ID != guest.ID {
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
	if !domain.CanGuestCancel(now, domain.StartAt(ap, shopLocation(shop))) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentInPast)
	}

	if err := domain.Cancel(ap, domain.StatusCancelledByClient, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: "guest",
		ActorID:   &guest.ID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
