package models

import "time"

// Kind distingue reservas reales de bloqueos administrativos.
// Un bloqueo ocupa el horario igual que una reserva, pero no tiene cliente.
const (
	BookingKindCustomer = "customer"
	BookingKindBlock    = "block"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referencia pública (se comparte con el cliente por correo/WhatsApp)
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	Kind string `gorm:"size:20;default:'customer'" json:"kind"`

	Name  string `gorm:"size:100" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	ServiceType string `gorm:"size:100" json:"service_type"`

	BookingDate time.Time `gorm:"index" json:"booking_date"`
	// Etiqueta del catálogo de horarios ("09:00 AM", ...). Vacía en registros
	// antiguos que se crearon antes de que el formulario pidiera hora.
	BookingTime string `gorm:"size:20" json:"booking_time"`

	AddressZip     string `gorm:"size:10" json:"address_zip"`
	AddressColonia string `gorm:"size:100" json:"address_colonia"`
	AddressStreet  string `gorm:"size:150" json:"address_street"`
	AddressNumber  string `gorm:"size:20" json:"address_number"`
	AddressCity    string `gorm:"size:100" json:"address_city"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
