package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ShineWorksMX/detailing-scheduler/internal/audit"
	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
	"github.com/ShineWorksMX/detailing-scheduler/internal/notify"
	"github.com/ShineWorksMX/detailing-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Name        string
	Phone       string
	Email       string
	ServiceType string

	Date string // YYYY-MM-DD
	Time string // etiqueta del catálogo

	AddressZip     string
	AddressColonia string
	AddressStreet  string
	AddressNumber  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	catalog domain.Catalog
	cache   SlotCache
	audit   AuditTrail
	notify  NotifyQueue

	city string
	tz   string
}

func NewCreateBooking(
	repo domain.Repository,
	catalog domain.Catalog,
	cache SlotCache,
	auditTrail AuditTrail,
	notifyQueue NotifyQueue,
	city string,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		audit:   auditTrail,
		notify:  notifyQueue,
		city:    city,
		tz:      tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Fecha en hora local del negocio
	// --------------------------------------------------
	date, err := time.ParseInLocation(
		DateKey,
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 2. Fecha + horario como elección válida
	// --------------------------------------------------
	sel := domain.NewSelection(uc.catalog)
	sel.SetDate(date)
	if err := sel.SetSlot(in.Time); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Insertar si el horario sigue libre
	// --------------------------------------------------
	b := &models.Booking{
		Reference:   uuid.NewString(),
		Kind:        models.BookingKindCustomer,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		ServiceType: in.ServiceType,
		BookingDate: date,
		BookingTime: sel.Slot(),

		AddressZip:     in.AddressZip,
		AddressColonia: in.AddressColonia,
		AddressStreet:  in.AddressStreet,
		AddressNumber:  in.AddressNumber,
		AddressCity:    uc.city,

		Status: string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBookingIfSlotFree(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_taken") && uc.audit != nil {
			uc.audit.Dispatch(audit.Event{
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.Date)
	}

	// --------------------------------------------------
	// 4. Avisos (solo después de que la reserva quedó guardada)
	// --------------------------------------------------
	if uc.notify != nil {
		uc.notify.Dispatch(notify.BookingNotice{
			Reference:   b.Reference,
			Name:        b.Name,
			Phone:       b.Phone,
			Email:       b.Email,
			ServiceType: b.ServiceType,
			Date:        b.BookingDate,
			Slot:        b.BookingTime,
			Address: fmt.Sprintf(
				"%s %s, %s",
				b.AddressStreet, b.AddressNumber, b.AddressColonia,
			),
		})
	}

	return b, nil
}
