package booking

import (
	"context"
	"time"

	"github.com/ShineWorksMX/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
	"github.com/ShineWorksMX/detailing-scheduler/internal/notify"
	"gorm.io/gorm"
)

// ===============================
// Fake repository (in-memory)
// ===============================

type fakeRepo struct {
	records []models.Booking
	nextID  uint

	takenErr  error
	createErr error
	updateErr error
	listErr   error
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	r.records = append(r.records, *b)
	return nil
}

func (r *fakeRepo) CreateBookingIfSlotFree(ctx context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}

	start := time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		0, 0, 0, 0, b.BookingDate.Location(),
	)
	end := start.Add(24 * time.Hour)

	for _, rec := range r.records {
		if rec.Status == string(domain.StatusCancelled) {
			continue
		}
		if rec.BookingDate.Before(start) || !rec.BookingDate.Before(end) {
			continue
		}
		if rec.BookingTime == b.BookingTime {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	return r.CreateBooking(ctx, b)
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			b := r.records[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Booking, len(r.records))
	copy(out, r.records)
	// lo más nuevo primero, como el repositorio real
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *fakeRepo) ListTakenSlots(_ context.Context, start, end time.Time) ([]string, error) {
	if r.takenErr != nil {
		return nil, r.takenErr
	}

	var slots []string
	for _, rec := range r.records {
		if rec.Status == string(domain.StatusCancelled) {
			continue
		}
		if rec.BookingDate.Before(start) || !rec.BookingDate.Before(end) {
			continue
		}
		slots = append(slots, rec.BookingTime)
	}
	return slots, nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.records {
		if r.records[i].ID == b.ID {
			r.records[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

func seedBooking(r *fakeRepo, date time.Time, slot string, status domain.Status) models.Booking {
	r.nextID++
	b := models.Booking{
		ID:          r.nextID,
		Kind:        models.BookingKindCustomer,
		BookingDate: date,
		BookingTime: slot,
		Status:      string(status),
	}
	if status == domain.StatusBlocked {
		b.Kind = models.BookingKindBlock
	}
	r.records = append(r.records, b)
	return b
}

// ===============================
// Fake collaborators
// ===============================

type fakeCache struct {
	data        map[string][]string
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]string{}}
}

func (c *fakeCache) Get(_ context.Context, date string) ([]string, bool) {
	slots, ok := c.data[date]
	return slots, ok
}

func (c *fakeCache) Set(_ context.Context, date string, slots []string) {
	c.data[date] = slots
}

func (c *fakeCache) Invalidate(_ context.Context, date string) {
	delete(c.data, date)
	c.invalidated = append(c.invalidated, date)
}

type fakeAudit struct {
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

type fakeNotify struct {
	notices []notify.BookingNotice
}

func (n *fakeNotify) Dispatch(notice notify.BookingNotice) {
	n.notices = append(n.notices, notice)
}
