package appointment

import (
	"context"
	"time"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/domain/schedule"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// VALIDAÇÃO PRÉ-TRANSAÇÃO (compartilhada cliente/convidado)
// ======================================================

type validatedSlot struct {
	day   *dayAvailability
	date  time.Time
	start schedule.TimeOfDay
	end   schedule.TimeOfDay
}

// validateBooking roda todas as checagens que não precisam de
// transação. O conflito com outros agendamentos NÃO é checado aqui:
// esse estado pode envelhecer até a transação rodar, então
// slot_occupied só nasce do re-check transacional.
func validateBooking(
	ctx context.Context,
	repo domain.Repository,
	clk clock.Clock,
	in CreateAppointmentInput,
) (*validatedSlot, error) {

	dateProbe, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// 1️⃣ Serviço
	service, err := resolveService(ctx, repo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	shop, err := repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}
	loc := shopLocation(shop)

	date := time.Date(
		dateProbe.Year(), dateProbe.Month(), dateProbe.Day(),
		0, 0, 0, 0, loc,
	)

	start, err := schedule.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// 2️⃣ Passado (horário da barbearia) — antes da política do dia:
	// horário que já passou é slot_in_past mesmo com a barbearia
	// fechada na data.
	if start.At(date, loc).Before(clk.Now()) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotInPast)
	}

	// 3️⃣ Política do dia (funcionamento, fechamentos, ausências,
	// expediente) — erros de bloqueio total propagam.
	day, err := resolveDay(ctx, repo, domain.AvailabilityInput{
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      dateProbe,
	}, service, loc)
	if err != nil {
		return nil, err
	}

	end := start.Add(service.DurationMin)
	requested := schedule.Range{Start: start, End: end}

	// 4️⃣ Dentro do expediente do barbeiro?
	if !day.workingRange.Contains(requested) {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	// 5️⃣ Dentro do funcionamento da barbearia (pausa incluída)?
	if !day.shopRange.Contains(requested) {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}
	if day.shopBreak != nil && requested.Overlaps(*day.shopBreak) {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}

	// 6️⃣ Alinhado à grade? A grade é ancorada na janela efetiva
	// (funcionamento ∩ expediente) — a MESMA que o resolver de slots
	// oferece, para que todo slot ofertado seja agendável.
	if !schedule.GridContains(
		day.window.Start,
		day.window.End,
		service.DurationMin,
		day.workingBreak,
		start,
	) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	// 7️⃣ Faixas bloqueadas da data
	if overlapsAny(requested, day.closureRanges) {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}
	if overlapsAny(requested, day.absenceRanges) {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	return &validatedSlot{
		day:   day,
		date:  date,
		start: start,
		end:   end,
	}, nil
}

// ======================================================
// USE CASE — cliente autenticado
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
	clientID uint,
) (*models.Appointment, error) {

	slot, err := validateBooking(ctx, uc.repo, uc.clock, in)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:  &clientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      slot.date,
		StartTime: slot.start.String(),
		EndTime:   slot.end.String(),
		Status:    string(domain.InitialStatus()),
	}

	// Fase transacional: re-check de sobreposição + insert.
	if err := uc.repo.CreateAppointmentAtomic(ctx, ap, nil); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotOccupied) {
			uc.audit.Dispatch(audit.Event{
				ActorType: "client",
				ActorID:   &clientID,
				Action:    "appointment_conflict",
				Entity:    "appointment",
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorType: "client",
		ActorID:   &clientID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	// Devolve com serviço / barbeiro / cliente para exibição imediata.
	return uc.repo.GetAppointment(ctx, ap.ID)
}
