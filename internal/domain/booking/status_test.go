package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
)

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusCompleted.IsActive())
	assert.True(t, StatusBlocked.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestCanTransition(t *testing.T) {
	normales := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	// el panel mueve libremente entre los cuatro estados normales
	for _, from := range normales {
		for _, to := range normales {
			assert.NoError(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	// un bloqueo no se edita
	for _, to := range normales {
		err := CanTransition(StatusBlocked, to)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "blocked -> %s", to)
	}

	// blocked nunca es destino de una transición
	for _, from := range normales {
		err := CanTransition(from, StatusBlocked)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), "%s -> blocked", from)
	}

	// estados inventados se rechazan
	err := CanTransition(StatusPending, Status("archived"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestSetStatus(t *testing.T) {
	t.Run("overwrites only the status field", func(t *testing.T) {
		b := &models.Booking{
			Name:        "Juan Pérez",
			BookingTime: "11:00 AM",
			Status:      string(StatusPending),
		}

		assert.NoError(t, SetStatus(b, StatusConfirmed))
		assert.Equal(t, "confirmed", b.Status)
		assert.Equal(t, "Juan Pérez", b.Name)
		assert.Equal(t, "11:00 AM", b.BookingTime)
	})

	t.Run("rejects editing a block", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusBlocked)}

		err := SetStatus(b, StatusCancelled)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, "blocked", b.Status)
	})
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
