package booking

import (
	"context"
	"time"

	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
)

type Repository interface {
	// -------- Create --------

	// CreateBooking inserta la reserva tal cual (sin verificar el horario).
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// CreateBookingIfSlotFree inserta dentro de una transacción que
	// bloquea y revisa los registros activos del día; si otro registro
	// activo ya tiene el horario devuelve el error de negocio slot_taken.
	CreateBookingIfSlotFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Read --------

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// ListBookings devuelve las reservas del panel, lo más nuevo primero.
	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// ListTakenSlots devuelve los booking_time de los registros activos
	// (status <> cancelled) cuyo booking_date cae en [start, end).
	ListTakenSlots(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]string, error)

	// -------- Update --------

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
