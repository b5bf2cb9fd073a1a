package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
)

func TestListBookingsNewestFirst(t *testing.T) {
	repo := &fakeRepo{}
	first := seedBooking(repo, day(2025, 6, 1), "09:00 AM", domain.StatusPending)
	second := seedBooking(repo, day(2025, 6, 2), "11:00 AM", domain.StatusConfirmed)

	uc := NewListBookings(repo)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, first.ID, out[1].ID)
	assert.Equal(t, "confirmed", out[0].Status)
	assert.Equal(t, "11:00 AM", out[0].BookingTime)
}

func TestListBookingsEmpty(t *testing.T) {
	uc := NewListBookings(&fakeRepo{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListBookingsError(t *testing.T) {
	uc := NewListBookings(&fakeRepo{listErr: assert.AnError})

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
