package appointment

import (
	"time"

	"github.com/navalha-app/booking-api/internal/domain/schedule"
	"github.com/navalha-app/booking-api/internal/models"
)

// ===============================
// Identidade do dono
// ===============================

type OwnerKind int

const (
	OwnerClient OwnerKind = iota
	OwnerGuest
)

// Owner é a identidade polimórfica do dono do agendamento:
// cliente cadastrado OU convidado, nunca os dois.
type Owner struct {
	Kind OwnerKind
	ID   uint
}

// OwnerOf extrai o dono; ok=false quando o registro viola o
// invariante "exatamente um" (nenhum ou ambos preenchidos).
func OwnerOf(ap *models.Appointment) (Owner, bool) {
	switch {
	case ap.ClientID != nil && ap.GuestClientID == nil:
		return Owner{Kind: OwnerClient, ID: *ap.ClientID}, true
	case ap.ClientID == nil && ap.GuestClientID != nil:
		return Owner{Kind: OwnerGuest, ID: *ap.GuestClientID}, true
	}
	return Owner{}, false
}

// ===============================
// Horários concretos
// ===============================

// StartAt ancora Date + StartTime no timezone da barbearia.
func StartAt(ap *models.Appointment, loc *time.Location) time.Time {
	t, _ := schedule.ParseTimeOfDay(ap.StartTime)
	return t.At(ap.Date, loc)
}

func EndAt(ap *models.Appointment, loc *time.Location) time.Time {
	t, _ := schedule.ParseTimeOfDay(ap.EndTime)
	return t.At(ap.Date, loc)
}

// Range devolve a faixa [start, end) do agendamento no dia.
func TimeRange(ap *models.Appointment) (schedule.Range, error) {
	return schedule.NewRange(ap.StartTime, ap.EndTime)
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusNoShow); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}
