package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type signalNotifier struct {
	got chan BookingNotice
}

func (s *signalNotifier) Notify(_ context.Context, n BookingNotice) error {
	s.got <- n
	return nil
}

func TestDispatcherDeliversInBackground(t *testing.T) {
	notifier := &signalNotifier{got: make(chan BookingNotice, 1)}
	d := NewDispatcher(notifier)

	d.Dispatch(BookingNotice{Reference: "ref-1", Slot: "09:00 AM"})

	select {
	case n := <-notifier.got:
		assert.Equal(t, "ref-1", n.Reference)
	case <-time.After(2 * time.Second):
		t.Fatal("notice was never delivered")
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher

	// sin mailer configurado el alta de reservas no debe tronar
	assert.NotPanics(t, func() {
		d.Dispatch(BookingNotice{Reference: "ref-2"})
	})
}
