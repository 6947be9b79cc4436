package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

// Dia base dos cenários: 2026-09-08, com o relógio congelado na
// véspera para não esbarrar no filtro de passado.
var (
	slotsDay = dateUTC(2026, 9, 8)
	dayInput = domain.AvailabilityInput{BarberID: 1, ServiceID: 1, Date: slotsDay}
)

func slotsUC(fr *fakeRepo, t *testing.T) *GetAvailableSlots {
	return NewGetAvailableSlots(fr, frozen(t, "2026-09-07 12:00"))
}

func TestGetAvailableSlots_GridWithinEffectiveWindow(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "10:00")

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_BookedSlotStaysListedAsUnavailable(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "10:00")
	fr.addAppointment(models.Appointment{
		ClientID: uintPtr(10), BarberID: 1, ServiceID: 1,
		Date: slotsDay, StartTime: "09:30", EndTime: "10:00",
	})

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
	}, got)
}

func TestGetAvailableSlots_CancelledAppointmentFreesTheSlot(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "10:00")
	fr.addAppointment(models.Appointment{
		ClientID: uintPtr(10), BarberID: 1, ServiceID: 1,
		Date: slotsDay, StartTime: "09:30", EndTime: "10:00",
		Status: string(domain.StatusCancelledByClient),
	})

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_WindowIsIntersectionOfShopAndBarber(t *testing.T) {
	fr := newFakeRepo()
	// expediente começa antes da barbearia abrir: só vale 09:00–10:00
	fr.setWorkingHours(1, slotsDay, "08:00", "10:00")

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_BreakIsSkippedNotMarked(t *testing.T) {
	fr := newFakeRepo()
	wh := models.WorkingHours{
		BarberID: 1, Weekday: int(slotsDay.Weekday()),
		StartTime: "09:00", EndTime: "12:00",
		BreakStart: "10:00", BreakEnd: "11:00",
		Active: true,
	}
	fr.working[whKey{1, wh.Weekday}] = wh

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	// 10:00 e 10:30 caem na pausa e somem da resposta
	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: true},
		{Time: "11:00", Available: true},
		{Time: "11:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_EmptyWhenDayFullyBlocked(t *testing.T) {
	cases := []struct {
		name  string
		setup func(fr *fakeRepo)
	}{
		{"barbearia fechada no dia da semana", func(fr *fakeRepo) {
			sh := fr.shopHours[int(slotsDay.Weekday())]
			sh.IsOpen = false
			fr.shopHours[int(slotsDay.Weekday())] = sh
			fr.setWorkingHours(1, slotsDay, "09:00", "18:00")
		}},
		{"fechamento de dia inteiro", func(fr *fakeRepo) {
			fr.setWorkingHours(1, slotsDay, "09:00", "18:00")
			fr.closures = append(fr.closures, models.ShopClosure{Date: slotsDay, Reason: "feriado"})
		}},
		{"ausência de dia inteiro", func(fr *fakeRepo) {
			fr.setWorkingHours(1, slotsDay, "09:00", "18:00")
			fr.absences = append(fr.absences, models.BarberAbsence{BarberID: 1, Date: slotsDay})
		}},
		{"sem expediente no dia", func(fr *fakeRepo) {}},
		{"expediente fora do funcionamento", func(fr *fakeRepo) {
			fr.setWorkingHours(1, slotsDay, "06:00", "08:00")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fr := newFakeRepo()
			tc.setup(fr)

			got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestGetAvailableSlots_PartialClosureMarksUnavailable(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "11:00")
	fr.closures = append(fr.closures, models.ShopClosure{
		Date: slotsDay, StartTime: "09:30", EndTime: "10:30", Reason: "manutenção",
	})

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
		{Time: "10:00", Available: false},
		{Time: "10:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_PartialAbsenceMarksUnavailable(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "10:30")
	fr.absences = append(fr.absences, models.BarberAbsence{
		BarberID: 1, Date: slotsDay, StartTime: "09:00", EndTime: "09:30",
	})

	got, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:00", Available: false},
		{Time: "09:30", Available: true},
		{Time: "10:00", Available: true},
	}, got)
}

func TestGetAvailableSlots_TodayDropsPastSlots(t *testing.T) {
	fr := newFakeRepo()
	today := dateUTC(2026, 9, 7)
	fr.setWorkingHours(1, today, "09:00", "11:00")

	uc := NewGetAvailableSlots(fr, frozen(t, "2026-09-07 09:40"))
	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: today,
	})
	require.NoError(t, err)

	// 09:00 e 09:30 já passaram: somem, nunca aparecem como
	// available=false
	assert.Equal(t, []domain.TimeSlot{
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_SlotStartingExactlyNowIsKept(t *testing.T) {
	fr := newFakeRepo()
	today := dateUTC(2026, 9, 7)
	fr.setWorkingHours(1, today, "09:00", "10:00")

	uc := NewGetAvailableSlots(fr, frozen(t, "2026-09-07 09:30"))
	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 1, Date: today,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Time: "09:30", Available: true},
	}, got)
}

func TestGetAvailableSlots_InactiveServiceIsAnError(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "18:00")
	svc := fr.services[1]
	svc.Active = false
	fr.services[1] = svc

	_, err := slotsUC(fr, t).Execute(context.Background(), dayInput)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestGetAvailableSlots_UnknownServiceIsAnError(t *testing.T) {
	fr := newFakeRepo()
	fr.setWorkingHours(1, slotsDay, "09:00", "18:00")

	_, err := slotsUC(fr, t).Execute(context.Background(), domain.AvailabilityInput{
		BarberID: 1, ServiceID: 99, Date: slotsDay,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}
