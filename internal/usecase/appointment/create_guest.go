package appointment

import (
	"context"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/validators"
)

type CreateGuestAppointmentInput struct {
	CreateAppointmentInput

	GuestName  string
	GuestPhone string
}

type CreateGuestAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCreateGuestAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateGuestAppointment {
	return &CreateGuestAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// Execute agenda para um convidado. O upsert do convidado (chave:
// telefone normalizado) acontece dentro da mesma transação do
// re-check de conflito e do insert.
func (uc *CreateGuestAppointment) Execute(
	ctx context.Context,
	in CreateGuestAppointmentInput,
) (*models.Appointment, error) {

	slot, err := validateBooking(ctx, uc.repo, uc.clock, in.CreateAppointmentInput)
	if err != nil {
		return nil, err
	}

	guest := &models.GuestClient{
		Name:  in.GuestName,
		Phone: validators.NormalizePhone(in.GuestPhone),
	}

	ap := &models.Appointment{
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      slot.date,
		StartTime: slot.start.String(),
		EndTime:   slot.end.String(),
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointmentAtomic(ctx, ap, guest); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: "guest",
		ActorID:   ap.GuestClientID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
