package appointment

import (
	"context"
	"time"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/dto"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/validators"
)

// ======================================================
// LISTAGENS (cliente / convidado / barbeiro)
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListClientAppointments(ctx, clientID)
}

func (uc *ListAppointments) ForGuest(
	ctx context.Context,
	phone string,
) ([]models.Appointment, error) {

	guest, err := uc.repo.FindGuestByPhone(ctx, validators.NormalizePhone(phone))
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeGuestNotFound)
	}

	return uc.repo.ListGuestAppointments(ctx, guest.ID)
}

// ForBarber lista a agenda do período. O intervalo é inclusivo nos
// dois extremos: date >= start AND date < end + 1 dia.
func (uc *ListAppointments) ForBarber(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListBarberAppointments(
		ctx,
		barberID,
		start,
		end.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]

		row := dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ServiceName: ap.Service.Name,
		}

		switch owner, ok := domain.OwnerOf(ap); {
		case ok && owner.Kind == domain.OwnerGuest && ap.GuestClient != nil:
			row.ClientName = ap.GuestClient.Name
			row.IsGuest = true
		case ok && ap.Client != nil:
			row.ClientName = ap.Client.Name
		}

		out = append(out, row)
	}

	return out, nil
}
