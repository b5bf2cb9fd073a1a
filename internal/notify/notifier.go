package notify

import (
	"context"
	"log"
	"time"
)

// BookingNotice es lo que se avisa al negocio cuando entra una reserva.
type BookingNotice struct {
	Reference   string
	Name        string
	Phone       string
	Email       string
	ServiceType string
	Date        time.Time
	Slot        string
	Address     string
}

// Notifier abstrae el medio de aviso (hoy correo; mañana podría ser
// WhatsApp Business o SMS).
type Notifier interface {
	Notify(ctx context.Context, n BookingNotice) error
}

// ===============================
// Dispatcher
// ===============================

// Dispatcher manda avisos en segundo plano. Una reserva ya guardada
// nunca se revierte ni se bloquea porque falle un aviso.
type Dispatcher struct {
	notifier Notifier
	queue    chan BookingNotice
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan BookingNotice, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := d.notifier.Notify(ctx, n); err != nil {
			log.Println("notify error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(n BookingNotice) {
	if d == nil {
		// sin mailer configurado no hay a quién avisar
		return
	}

	select {
	case d.queue <- n:
		// enviado
	default:
		// cola llena: se descarta el aviso, la reserva ya quedó guardada
		log.Println("notify queue full, dropping notice")
	}
}
