package appointment

import (
	"context"

	"github.com/navalha-app/booking-api/internal/clock"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/domain/schedule"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetAvailableSlots(repo domain.Repository, clk clock.Clock) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, clock: clk}
}

// Execute devolve a grade do dia com a flag de disponibilidade.
// Dia sem agenda (fechado, ausente, sem expediente) devolve lista
// vazia, não erro. Slots de hoje cujo início já passou são removidos
// da resposta, nunca devolvidos com available=false.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := resolveService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	day, err := resolveDay(ctx, uc.repo, in, service, shopLocation(shop))
	if err != nil {
		if fullDayBlocked(err) {
			return []domain.TimeSlot{}, nil
		}
		return nil, err
	}

	appointments, err := uc.repo.ListConfirmedAppointments(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	var busy []schedule.Range
	for i := range appointments {
		if r, err := domain.TimeRange(&appointments[i]); err == nil {
			busy = append(busy, r)
		}
	}

	duration := day.service.DurationMin
	breaks := day.breaks()

	now := uc.clock.Now()
	sameDay := now.Year() == in.Date.Year() && now.YearDay() == in.Date.YearDay()

	slots := []domain.TimeSlot{}
	for _, cand := range schedule.Grid(day.window.Start, day.window.End, duration, nil) {
		slot := schedule.Range{Start: cand, End: cand.Add(duration)}

		if overlapsAny(slot, breaks) {
			continue
		}

		// hoje: descarta o que já passou (início estritamente antes de agora)
		if sameDay && cand.At(in.Date, day.loc).Before(now) {
			continue
		}

		available := !overlapsAny(slot, day.closureRanges) &&
			!overlapsAny(slot, day.absenceRanges) &&
			!overlapsAny(slot, busy)

		slots = append(slots, domain.TimeSlot{
			Time:      cand.String(),
			Available: available,
		})
	}

	return slots, nil
}
