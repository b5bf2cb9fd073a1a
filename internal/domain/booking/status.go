package booking

import "github.com/ShineWorksMX/detailing-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	// StatusBlocked solo existe como estado inicial de un bloqueo
	// administrativo. Nunca se asigna después.
	StatusBlocked Status = "blocked"
)

// IsActive: una reserva activa ocupa su horario. Solo cancelled lo libera.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// IsAssignable dice si el panel puede poner una reserva en este estado.
// El panel mueve libremente entre los cuatro estados normales.
func IsAssignable(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition valida un cambio de estado pedido desde el panel.
func CanTransition(current, next Status) error {
	if current == StatusBlocked {
		// los bloqueos no se editan, se quedan como están
		return httperr.ErrBusiness("invalid_state")
	}
	if !IsAssignable(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
