package booking

import (
	"context"

	"github.com/ShineWorksMX/detailing-scheduler/internal/audit"
	"github.com/ShineWorksMX/detailing-scheduler/internal/notify"
)

// SlotCache es el cache opcional de disponibilidad por fecha. Un cache
// que falla se comporta como cache vacío.
type SlotCache interface {
	Get(ctx context.Context, date string) ([]string, bool)
	Set(ctx context.Context, date string, slots []string)
	Invalidate(ctx context.Context, date string)
}

// AuditTrail registra acciones administrativas en segundo plano.
type AuditTrail interface {
	Dispatch(ev audit.Event)
}

// NotifyQueue manda avisos de reservas nuevas en segundo plano.
type NotifyQueue interface {
	Dispatch(n notify.BookingNotice)
}

// DateKey es el formato con el que se cachean e invalidan las fechas.
const DateKey = "2006-01-02"
