package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalha-app/booking-api/internal/httperr"
)

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusConfirmed.Terminal())

	for _, s := range []Status{StatusCancelledByClient, StatusCancelledByBarber, StatusCompleted, StatusNoShow} {
		assert.True(t, s.Terminal(), "%s deveria ser terminal", s)
	}
}

func TestCanTransition_FromConfirmed(t *testing.T) {
	for _, to := range []Status{StatusCancelledByClient, StatusCancelledByBarber, StatusCompleted, StatusNoShow} {
		assert.NoError(t, CanTransition(StatusConfirmed, to))
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	terminals := []Status{StatusCancelledByClient, StatusCancelledByBarber, StatusCompleted, StatusNoShow}

	for _, from := range terminals {
		for _, to := range append(terminals, StatusConfirmed) {
			err := CanTransition(from, to)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotCancellable),
				"%s -> %s deveria ser rejeitado", from, to)
		}
	}
}

func TestCanTransition_ConfirmedIsNotATarget(t *testing.T) {
	err := CanTransition(StatusConfirmed, StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotCancellable))
}
