package appointment

import (
	"context"
	"time"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/domain/schedule"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/timezone"
)

// ======================================================
// POLÍTICA DE DISPONIBILIDADE DO DIA
// ======================================================

// dayAvailability é o resultado de resolver a agenda de um barbeiro
// em um dia: a janela efetiva (interseção expediente ∩ funcionamento),
// as pausas e as faixas bloqueadas por fechamentos e ausências.
type dayAvailability struct {
	service *models.Service
	loc     *time.Location

	shopRange    schedule.Range
	workingRange schedule.Range
	workingBreak *schedule.Range
	shopBreak    *schedule.Range

	// janela efetiva de geração de slots
	window schedule.Range

	closureRanges []schedule.Range
	absenceRanges []schedule.Range
}

func (d *dayAvailability) breaks() []schedule.Range {
	var out []schedule.Range
	if d.workingBreak != nil {
		out = append(out, *d.workingBreak)
	}
	if d.shopBreak != nil {
		out = append(out, *d.shopBreak)
	}
	return out
}

func shopLocation(shop *models.Barbershop) *time.Location {
	return timezone.Location(shop.Timezone)
}

func overlapsAny(slot schedule.Range, ranges []schedule.Range) bool {
	for _, r := range ranges {
		if slot.Overlaps(r) {
			return true
		}
	}
	return false
}

// resolveService valida o serviço do agendamento: precisa existir e
// estar ativo.
func resolveService(
	ctx context.Context,
	repo domain.Repository,
	serviceID uint,
) (*models.Service, error) {

	service, err := repo.GetService(ctx, serviceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return service, nil
}

// resolveDay aplica a política em ordem, com curto-circuito. Dia
// totalmente bloqueado vira erro de negócio (shop_closed ou
// barber_unavailable); quem lista slots traduz isso para lista vazia,
// quem agenda propaga o erro. Serviço e timezone já chegam resolvidos
// pelo chamador.
func resolveDay(
	ctx context.Context,
	repo domain.Repository,
	in domain.AvailabilityInput,
	service *models.Service,
	loc *time.Location,
) (*dayAvailability, error) {

	weekday := int(in.Date.Weekday())

	// 1️⃣ Funcionamento da barbearia no dia da semana
	sh, err := repo.GetShopHours(ctx, weekday)
	if err != nil || !sh.IsOpen {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}

	shopRange, err := schedule.NewRange(sh.StartTime, sh.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}

	day := &dayAvailability{
		service:   service,
		loc:       loc,
		shopRange: shopRange,
	}

	if sh.BreakStart != "" && sh.BreakEnd != "" {
		if brk, err := schedule.NewRange(sh.BreakStart, sh.BreakEnd); err == nil {
			day.shopBreak = &brk
		}
	}

	// 2️⃣ Fechamentos da data
	closures, err := repo.ListShopClosures(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	for _, c := range closures {
		if c.FullDay() {
			return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
		}
		if r, err := schedule.NewRange(c.StartTime, c.EndTime); err == nil {
			day.closureRanges = append(day.closureRanges, r)
		}
	}

	// 3️⃣ Ausências do barbeiro na data
	absences, err := repo.ListBarberAbsences(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	for _, a := range absences {
		if a.FullDay() {
			return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
		}
		if r, err := schedule.NewRange(a.StartTime, a.EndTime); err == nil {
			day.absenceRanges = append(day.absenceRanges, r)
		}
	}

	// 4️⃣ Expediente do barbeiro
	wh, err := repo.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	workingRange, err := schedule.NewRange(wh.StartTime, wh.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}
	day.workingRange = workingRange

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		if brk, err := schedule.NewRange(wh.BreakStart, wh.BreakEnd); err == nil {
			day.workingBreak = &brk
		}
	}

	// Janela efetiva: interseção (nunca união) entre funcionamento
	// e expediente.
	window, ok := shopRange.Intersect(workingRange)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}
	day.window = window

	return day, nil
}

// fullDayBlocked diz se o erro representa "dia sem agenda", que para
// listagem de slots vira resposta vazia em vez de erro.
func fullDayBlocked(err error) bool {
	return httperr.IsBusiness(err, httperr.CodeShopClosed) ||
		httperr.IsBusiness(err, httperr.CodeBarberUnavailable)
}
