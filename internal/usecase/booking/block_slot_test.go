package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
)

func newBlockUC(repo *fakeRepo, cache *fakeCache, auditTrail *fakeAudit) *BlockSlot {
	return NewBlockSlot(repo, domain.DefaultCatalog(), cache, auditTrail, "America/Chihuahua")
}

func TestBlockSlot(t *testing.T) {
	repo := &fakeRepo{}
	cache := newFakeCache()
	auditTrail := &fakeAudit{}

	uc := newBlockUC(repo, cache, auditTrail)

	b, err := uc.Execute(context.Background(), 3, "2025-06-10", "09:00 AM")
	require.NoError(t, err)

	assert.Equal(t, models.BookingKindBlock, b.Kind)
	assert.Equal(t, string(domain.StatusBlocked), b.Status)
	assert.Equal(t, "09:00 AM", b.BookingTime)
	assert.NotEmpty(t, b.Reference)
	assert.Empty(t, b.Name) // un bloqueo no tiene cliente

	assert.Contains(t, cache.invalidated, "2025-06-10")

	require.Len(t, auditTrail.events, 1)
	assert.Equal(t, "slot_blocked", auditTrail.events[0].Action)
}

func TestBlockSlotRemovesAvailability(t *testing.T) {
	repo := &fakeRepo{}

	blockUC := newBlockUC(repo, newFakeCache(), &fakeAudit{})
	_, err := blockUC.Execute(context.Background(), 3, "2025-06-10", "09:00 AM")
	require.NoError(t, err)

	availabilityUC := NewGetAvailability(repo, domain.DefaultCatalog(), nil)
	slots, err := availabilityUC.Execute(context.Background(), businessDay(2025, 6, 10))

	require.NoError(t, err)
	assert.Equal(t, []string{"11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM"}, slots)
}

func TestBlockSlotValidation(t *testing.T) {
	uc := newBlockUC(&fakeRepo{}, newFakeCache(), &fakeAudit{})

	_, err := uc.Execute(context.Background(), 3, "10/06/2025", "09:00 AM")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), 3, "2025-06-10", "midnight")
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestBlockSlotAllowedOverExistingBooking(t *testing.T) {
	repo := &fakeRepo{}
	seedBooking(repo, businessDay(2025, 6, 10), "09:00 AM", domain.StatusPending)

	uc := newBlockUC(repo, newFakeCache(), &fakeAudit{})

	// bloquear encima de una reserva existente es deliberado, no conflicto
	_, err := uc.Execute(context.Background(), 3, "2025-06-10", "09:00 AM")
	require.NoError(t, err)
	assert.Len(t, repo.records, 2)
}
