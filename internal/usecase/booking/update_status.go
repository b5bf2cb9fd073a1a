package booking

import (
	"context"

	"github.com/ShineWorksMX/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	cache SlotCache
	audit AuditTrail
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	cache SlotCache,
	auditTrail AuditTrail,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		cache: cache,
		audit: auditTrail,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	next domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	previous := b.Status
	if err := domain.SetStatus(b, next); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// cancelar libera el horario, reactivar lo vuelve a ocupar
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, b.BookingDate.Format(DateKey))
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "booking_status_changed",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{
				"from": previous,
				"to":   string(next),
			},
		})
	}

	return b, nil
}
