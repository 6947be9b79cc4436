package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/navalha-app/booking-api/internal/audit"
	"github.com/navalha-app/booking-api/internal/clock"
)

func spLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

// frozen congela o relógio em "YYYY-MM-DD HH:MM" no timezone da
// barbearia de teste.
func frozen(t *testing.T, value string) clock.Clock {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, spLoc(t))
	require.NoError(t, err)
	return clock.Fixed{T: ts}
}

func dateUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// noAudit descarta eventos (logger nulo).
func noAudit() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func uintPtr(v uint) *uint { return &v }
