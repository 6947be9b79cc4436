package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

var errNotFound = errors.New("record not found")

type whKey struct {
	barberID uint
	weekday  int
}

// fakeRepo é uma implementação em memória do domain.Repository com a
// mesma semântica do repositório gorm, incluindo o re-check de
// sobreposição dentro de CreateAppointmentAtomic.
type fakeRepo struct {
	shop models.Barbershop

	services       map[uint]models.Service
	barberServices map[uint][]uint // barberID -> serviceIDs

	shopHours map[int]models.ShopHours
	closures  []models.ShopClosure
	absences  []models.BarberAbsence
	working   map[whKey]models.WorkingHours

	clients      map[uint]models.Client
	guests       map[uint]*models.GuestClient
	appointments map[uint]*models.Appointment

	nextGuestID uint
	nextApptID  uint

	createErr error // força falha na fase transacional
	shopErr   error // força falha na leitura da barbearia
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	fr := &fakeRepo{
		shop: models.Barbershop{
			ID:       1,
			Name:     "Navalha",
			Slug:     "navalha",
			Timezone: "America/Sao_Paulo",
		},
		services:       map[uint]models.Service{},
		barberServices: map[uint][]uint{},
		shopHours:      map[int]models.ShopHours{},
		working:        map[whKey]models.WorkingHours{},
		clients:        map[uint]models.Client{},
		guests:         map[uint]*models.GuestClient{},
		appointments:   map[uint]*models.Appointment{},
	}

	fr.services[1] = models.Service{ID: 1, Name: "Corte", DurationMin: 30, Price: 50, Active: true}
	fr.clients[10] = models.Client{ID: 10, Name: "João", Email: "joao@example.com"}
	fr.clients[11] = models.Client{ID: 11, Name: "Pedro", Email: "pedro@example.com"}

	// barbearia aberta todos os dias, 09:00–18:00
	for wd := 0; wd < 7; wd++ {
		fr.shopHours[wd] = models.ShopHours{
			Weekday: wd, IsOpen: true,
			StartTime: "09:00", EndTime: "18:00",
		}
	}
	return fr
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// -------- fixtures --------

func (fr *fakeRepo) setWorkingHours(barberID uint, date time.Time, start, end string) {
	fr.working[whKey{barberID, int(date.Weekday())}] = models.WorkingHours{
		BarberID: barberID,
		Weekday:  int(date.Weekday()),
		StartTime: start, EndTime: end,
		Active: true,
	}
}

func (fr *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	fr.nextApptID++
	ap.ID = fr.nextApptID
	if ap.Status == "" {
		ap.Status = string(domain.StatusConfirmed)
	}
	cp := ap
	fr.appointments[cp.ID] = &cp
	return &cp
}

func (fr *fakeRepo) addGuest(name, phone string) *models.GuestClient {
	fr.nextGuestID++
	g := &models.GuestClient{ID: fr.nextGuestID, Name: name, Phone: phone}
	fr.guests[g.ID] = g
	return g
}

// -------- domain.Repository --------

func (fr *fakeRepo) GetShop(context.Context) (*models.Barbershop, error) {
	if fr.shopErr != nil {
		return nil, fr.shopErr
	}
	shop := fr.shop
	return &shop, nil
}

func (fr *fakeRepo) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	s, ok := fr.services[serviceID]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (fr *fakeRepo) ListActiveServices(_ context.Context, barberID *uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range fr.services {
		if !s.Active {
			continue
		}
		if barberID != nil && !fr.barberOffers(*barberID, s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (fr *fakeRepo) barberOffers(barberID, serviceID uint) bool {
	for _, id := range fr.barberServices[barberID] {
		if id == serviceID {
			return true
		}
	}
	return false
}

func (fr *fakeRepo) GetShopHours(_ context.Context, weekday int) (*models.ShopHours, error) {
	sh, ok := fr.shopHours[weekday]
	if !ok {
		return nil, errNotFound
	}
	return &sh, nil
}

func (fr *fakeRepo) ListShopClosures(_ context.Context, date time.Time) ([]models.ShopClosure, error) {
	var out []models.ShopClosure
	for _, c := range fr.closures {
		if sameDate(c.Date, date) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (fr *fakeRepo) ListBarberAbsences(_ context.Context, barberID uint, date time.Time) ([]models.BarberAbsence, error) {
	var out []models.BarberAbsence
	for _, a := range fr.absences {
		if a.BarberID == barberID && sameDate(a.Date, date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (fr *fakeRepo) GetWorkingHours(_ context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := fr.working[whKey{barberID, weekday}]
	if !ok {
		return nil, errNotFound
	}
	return &wh, nil
}

func (fr *fakeRepo) ListConfirmedAppointments(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range fr.appointments {
		if ap.BarberID == barberID &&
			ap.Status == string(domain.StatusConfirmed) &&
			sameDate(ap.Date, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (fr *fakeRepo) CreateAppointmentAtomic(
	_ context.Context,
	ap *models.Appointment,
	guest *models.GuestClient,
) error {

	if fr.createErr != nil {
		return fr.createErr
	}

	if guest != nil {
		existing := fr.findGuest(guest.Phone)
		if existing == nil {
			existing = fr.addGuest(guest.Name, guest.Phone)
		} else {
			existing.Name = guest.Name
		}
		ap.GuestClientID = &existing.ID
	}

	// re-check de sobreposição, como na transação real
	for _, other := range fr.appointments {
		if other.BarberID == ap.BarberID &&
			other.Status == string(domain.StatusConfirmed) &&
			sameDate(other.Date, ap.Date) &&
			other.StartTime < ap.EndTime &&
			other.EndTime > ap.StartTime {
			return httperr.ErrBusiness(httperr.CodeSlotOccupied)
		}
	}

	fr.nextApptID++
	ap.ID = fr.nextApptID
	cp := *ap
	fr.appointments[cp.ID] = &cp
	return nil
}

func (fr *fakeRepo) findGuest(phone string) *models.GuestClient {
	for _, g := range fr.guests {
		if g.Phone == phone {
			return g
		}
	}
	return nil
}

func (fr *fakeRepo) GetAppointment(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	ap, ok := fr.appointments[appointmentID]
	if !ok {
		return nil, errNotFound
	}

	cp := *ap
	fr.preload(&cp)
	return &cp, nil
}

// preload imita os Preloads do repositório gorm.
func (fr *fakeRepo) preload(ap *models.Appointment) {
	if s, ok := fr.services[ap.ServiceID]; ok {
		ap.Service = s
	}
	if ap.ClientID != nil {
		if c, ok := fr.clients[*ap.ClientID]; ok {
			cc := c
			ap.Client = &cc
		}
	}
	if ap.GuestClientID != nil {
		if g, ok := fr.guests[*ap.GuestClientID]; ok {
			gc := *g
			ap.GuestClient = &gc
		}
	}
}

func (fr *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := fr.appointments[ap.ID]; !ok {
		return errNotFound
	}
	cp := *ap
	fr.appointments[cp.ID] = &cp
	return nil
}

func (fr *fakeRepo) FindGuestByPhone(_ context.Context, phone string) (*models.GuestClient, error) {
	if g := fr.findGuest(phone); g != nil {
		cp := *g
		return &cp, nil
	}
	return nil, errNotFound
}

func (fr *fakeRepo) ListClientAppointments(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range fr.appointments {
		if ap.ClientID != nil && *ap.ClientID == clientID {
			cp := *ap
			fr.preload(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (fr *fakeRepo) ListGuestAppointments(_ context.Context, guestClientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range fr.appointments {
		if ap.GuestClientID != nil && *ap.GuestClientID == guestClientID {
			cp := *ap
			fr.preload(&cp)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (fr *fakeRepo) ListBarberAppointments(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range fr.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.Date.Before(start) || !ap.Date.Before(end) {
			continue
		}
		cp := *ap
		fr.preload(&cp)
		out = append(out, cp)
	}
	return out, nil
}
