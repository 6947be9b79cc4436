package appointment

import (
	"context"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

type CancelByClient struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCancelByClient(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CancelByClient {
	return &CancelByClient{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// CancelResult acompanha o agendamento cancelado com o sinal de
// "cancelamento em cima da hora" — aviso de UI, nunca bloqueio.
type CancelResult struct {
	Appointment *models.Appointment `json:"appointment"`
	LateWarning bool                `json:"late_warning"`
}

func (uc *CancelByClient) Execute(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*CancelResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	owner, ok := domain.OwnerOf(ap)
	if !ok || owner.Kind != domain.OwnerClient || owner.ID != clientID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if domain.Status(ap.Status) != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotCancellable)
	}

	now := uc.clock.Now()

	// Permissão do cliente: só o dia conta.
	if !domain.CanClientCancel(now, ap.Date) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentInPast)
	}

	// O timezone da barbearia vem ANTES de qualquer mutação: falha
	// aqui não pode deixar um cancelamento persistido parecendo erro.
	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, domain.StatusCancelledByClient, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: "client",
		ActorID:   &clientID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return &CancelResult{
		Appointment: ap,
		LateWarning: domain.ShouldWarnLateCancellation(
			now,
			domain.StartAt(ap, shopLocation(shop)),
		),
	}, nil
}
