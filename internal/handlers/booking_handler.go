package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httpresp"
	"github.com/ShineWorksMX/detailing-scheduler/internal/middleware"
	ucBooking "github.com/ShineWorksMX/detailing-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER (panel de administración)
// ======================================================

type BookingHandler struct {
	listUC   *ucBooking.ListBookings
	statusUC *ucBooking.UpdateBookingStatus
	blockUC  *ucBooking.BlockSlot
}

func NewBookingHandler(
	listUC *ucBooking.ListBookings,
	statusUC *ucBooking.UpdateBookingStatus,
	blockUC *ucBooking.BlockSlot,
) *BookingHandler {
	return &BookingHandler{
		listUC:   listUC,
		statusUC: statusUC,
		blockUC:  blockUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BlockSlotRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al cargar las citas.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.statusUC.Execute(
		c.Request.Context(),
		userID,
		uint(id),
		domain.Status(req.Status),
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Reserva no encontrada.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Un bloqueo no se puede editar.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Error al actualizar el estado.")
		}
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// BLOCK SLOT
// ======================================================

func (h *BookingHandler) Block(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.blockUC.Execute(
		c.Request.Context(),
		userID,
		req.Date,
		req.Time,
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		case httperr.IsBusiness(err, "invalid_slot"):
			httperr.BadRequest(c, "invalid_slot", "Horario inválido.")
		default:
			httperr.Internal(c, "failed_to_block_slot", "Error al bloquear el horario.")
		}
		return
	}

	httpresp.Created(c, b)
}
