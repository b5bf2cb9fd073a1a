package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ShineWorksMX/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
	"github.com/ShineWorksMX/detailing-scheduler/internal/timezone"
)

// BlockSlot crea un registro de bloqueo: ocupa el horario como una
// reserva, pero sin cliente. Los bloqueos no se editan después.
type BlockSlot struct {
	repo  domain.Repository
	cache SlotCache
	audit AuditTrail

	catalog domain.Catalog
	tz      string
}

func NewBlockSlot(
	repo domain.Repository,
	catalog domain.Catalog,
	cache SlotCache,
	auditTrail AuditTrail,
	tz string,
) *BlockSlot {
	return &BlockSlot{
		repo:    repo,
		cache:   cache,
		audit:   auditTrail,
		catalog: catalog,
		tz:      tz,
	}
}

func (uc *BlockSlot) Execute(
	ctx context.Context,
	userID uint,
	dateStr string,
	slot string,
) (*models.Booking, error) {

	date, err := time.ParseInLocation(
		DateKey,
		dateStr,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	sel := domain.NewSelection(uc.catalog)
	sel.SetDate(date)
	if err := sel.SetSlot(slot); err != nil {
		return nil, err
	}

	// Se inserta aunque el horario ya esté ocupado: bloquear encima de
	// una reserva existente es un acto deliberado del administrador.
	b := &models.Booking{
		Reference:   uuid.NewString(),
		Kind:        models.BookingKindBlock,
		BookingDate: date,
		BookingTime: sel.Slot(),
		Status:      string(domain.StatusBlocked),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, dateStr)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "slot_blocked",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{
				"date": dateStr,
				"time": slot,
			},
		})
	}

	return b, nil
}
