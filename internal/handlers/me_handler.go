package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShineWorksMX/detailing-scheduler/internal/httperr"
	"github.com/ShineWorksMX/detailing-scheduler/internal/httpresp"
	"github.com/ShineWorksMX/detailing-scheduler/internal/middleware"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.AdminUser
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	httpresp.OK(c, user)
}
