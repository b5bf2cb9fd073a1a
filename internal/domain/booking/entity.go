package booking

import (
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus aplica un cambio de estado pedido desde el panel. Solo toca
// el campo status; ningún otro campo cambia por una transición.
func SetStatus(b *models.Booking, next Status) error {
	if err := CanTransition(Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(next)
	return nil
}
