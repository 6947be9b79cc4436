package appointment

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

func TestListAppointments_ForClient(t *testing.T) {
	fr := newFakeRepo()
	fr.addAppointment(models.Appointment{
		ClientID: uintPtr(10), BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 8), StartTime: "14:00", EndTime: "14:30",
	})
	fr.addAppointment(models.Appointment{
		ClientID: uintPtr(11), BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 8), StartTime: "15:00", EndTime: "15:30",
	})

	got, err := NewListAppointments(fr).ForClient(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "14:00", got[0].StartTime)
}

func TestListAppointments_ForGuest(t *testing.T) {
	fr := newFakeRepo()
	guest := fr.addGuest("Maria", "11988887777")
	fr.addAppointment(models.Appointment{
		GuestClientID: &guest.ID, BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 8), StartTime: "14:00", EndTime: "14:30",
	})

	got, err := NewListAppointments(fr).ForGuest(context.Background(), "(11) 98888-7777")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = NewListAppointments(fr).ForGuest(context.Background(), "11900000000")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeGuestNotFound))
}

func TestListAppointments_ForBarberInclusiveRange(t *testing.T) {
	fr := newFakeRepo()
	guest := fr.addGuest("Maria", "11988887777")

	fr.addAppointment(models.Appointment{ // antes do período
		ClientID: uintPtr(10), BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 7), StartTime: "09:00", EndTime: "09:30",
	})
	fr.addAppointment(models.Appointment{ // primeiro dia
		ClientID: uintPtr(10), BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 8), StartTime: "14:00", EndTime: "14:30",
	})
	fr.addAppointment(models.Appointment{ // último dia (inclusivo)
		GuestClientID: &guest.ID, BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 10), StartTime: "10:00", EndTime: "10:30",
	})
	fr.addAppointment(models.Appointment{ // depois do período
		ClientID: uintPtr(10), BarberID: 1, ServiceID: 1,
		Date: dateUTC(2026, 9, 11), StartTime: "10:00", EndTime: "10:30",
	})
	fr.addAppointment(models.Appointment{ // outro barbeiro
		ClientID: uintPtr(10), BarberID: 2, ServiceID: 1,
		Date: dateUTC(2026, 9, 9), StartTime: "10:00", EndTime: "10:30",
	})

	got, err := NewListAppointments(fr).ForBarber(
		context.Background(), 1,
		dateUTC(2026, 9, 8), dateUTC(2026, 9, 10),
	)
	require.NoError(t, err)
	require.Len(t, got, 2)

	sort.Slice(got, func(i, j int) bool { return got[i].Date.Before(got[j].Date) })

	assert.Equal(t, "João", got[0].ClientName)
	assert.False(t, got[0].IsGuest)
	assert.Equal(t, "Corte", got[0].ServiceName)

	assert.Equal(t, "Maria", got[1].ClientName)
	assert.True(t, got[1].IsGuest)
}

func TestGetServices_FiltersByBarber(t *testing.T) {
	fr := newFakeRepo()
	fr.services[2] = models.Service{ID: 2, Name: "Barba", DurationMin: 20, Active: true}
	fr.services[3] = models.Service{ID: 3, Name: "Luzes", DurationMin: 60, Active: false}
	fr.barberServices[1] = []uint{1}

	all, err := NewGetServices(fr).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2) // inativo fica de fora

	mine, err := NewGetServices(fr).Execute(context.Background(), uintPtr(1))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Corte", mine[0].Name)
}
