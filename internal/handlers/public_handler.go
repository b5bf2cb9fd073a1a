package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/notify"
	"github.com/ShineWorksMX/detailing-scheduler/internal/timezone"
	ucBooking "github.com/ShineWorksMX/detailing-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking

	catalog domain.Catalog
	tz      string
	waPhone string
}

func NewPublicHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	catalog domain.Catalog,
	tz string,
	waPhone string,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		catalog:        catalog,
		tz:             tz,
		waPhone:        waPhone,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateBookingRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Phone       string `json:"phone" binding:"required,min=10"`
	Email       string `json:"email" binding:"required,email"`
	ServiceType string `json:"service_type" binding:"required"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"`

	AddressZip     string `json:"address_zip" binding:"required,mx_zip"`
	AddressColonia string `json:"address_colonia" binding:"required"`
	AddressStreet  string `json:"address_street" binding:"required"`
	AddressNumber  string `json:"address_number" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")

	// Sin fecha elegida no hay nada que filtrar: se muestra el catálogo
	// completo (el envío de la reserva sí exige fecha).
	if dateStr == "" {
		c.JSON(http.StatusOK, gin.H{
			"date":  "",
			"slots": h.catalog.Labels(),
		})
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(h.tz),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		// Mejor mostrar de más que dejar el formulario muerto: si la
		// consulta falla, todos los horarios aparecen libres y el dueño
		// resuelve a mano el raro doble empalme.
		log.Println("availability query failed, degrading open:", err)
		c.JSON(http.StatusOK, gin.H{
			"date":     dateStr,
			"slots":    h.catalog.Labels(),
			"degraded": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Name:        req.Name,
			Phone:       req.Phone,
			Email:       req.Email,
			ServiceType: req.ServiceType,
			Date:        req.Date,
			Time:        req.Time,

			AddressZip:     req.AddressZip,
			AddressColonia: req.AddressColonia,
			AddressStreet:  req.AddressStreet,
			AddressNumber:  req.AddressNumber,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		case httperr.IsBusiness(err, "invalid_slot"):
			httperr.BadRequest(c, "invalid_slot", "Horario inválido.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "Ese horario ya está ocupado, elige otro.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Hubo un error al enviar tu reserva. Intenta de nuevo.")
		}
		return
	}

	// El cliente puede confirmar por WhatsApp con el mensaje ya armado.
	c.JSON(http.StatusCreated, gin.H{
		"booking": b,
		"whatsapp_link": notify.WhatsAppLink(h.waPhone, notify.BookingNotice{
			Reference:   b.Reference,
			Name:        b.Name,
			ServiceType: b.ServiceType,
			Date:        b.BookingDate,
			Slot:        b.BookingTime,
		}),
	})
}
