package booking

import (
	"context"
	"time"

	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo    domain.Repository
	catalog domain.Catalog
	cache   SlotCache
}

func NewGetAvailability(
	repo domain.Repository,
	catalog domain.Catalog,
	cache SlotCache,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
	}
}

// Execute calcula los horarios libres de un día: el catálogo menos los
// horarios de los registros activos de esa fecha (un bloqueo ocupa
// igual que una reserva). El resultado conserva el orden del catálogo.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	dateKey := date.Format(DateKey)

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, dateKey); ok {
			return slots, nil
		}
	}

	start, end := timezone.DayWindow(date)

	labels, err := uc.repo.ListTakenSlots(ctx, start, end)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		// registros viejos sin hora no ocupan ningún horario
		if label == "" {
			continue
		}
		taken[label] = struct{}{}
	}

	free := uc.catalog.Without(taken)

	if uc.cache != nil {
		uc.cache.Set(ctx, dateKey, free)
	}

	return free, nil
}
