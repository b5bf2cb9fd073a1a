package booking

import (
	"time"

	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
)

// ===============================
// Selection
// ===============================

// Selection modela la elección fecha + horario de un cliente en curso.
// Cambiar la fecha descarta el horario elegido: un horario solo tiene
// sentido respecto a la disponibilidad del día en que se eligió.
type Selection struct {
	catalog Catalog
	date    *time.Time
	slot    string
}

func NewSelection(catalog Catalog) *Selection {
	return &Selection{catalog: catalog}
}

func (s *Selection) SetDate(date time.Time) {
	s.date = &date
	s.slot = ""
}

func (s *Selection) SetSlot(label string) error {
	if s.date == nil {
		return httperr.ErrBusiness("date_required")
	}
	if !s.catalog.Contains(label) {
		return httperr.ErrBusiness("invalid_slot")
	}
	s.slot = label
	return nil
}

func (s *Selection) Date() (time.Time, bool) {
	if s.date == nil {
		return time.Time{}, false
	}
	return *s.date, true
}

func (s *Selection) Slot() string {
	return s.slot
}

// Ready: se puede enviar la reserva solo con fecha y horario elegidos.
func (s *Selection) Ready() bool {
	return s.date != nil && s.slot != ""
}
