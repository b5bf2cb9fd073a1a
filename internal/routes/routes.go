package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShineWorksMX/detailing-scheduler/internal/audit"
	"github.com/ShineWorksMX/detailing-scheduler/internal/cache"
	"github.com/ShineWorksMX/detailing-scheduler/internal/config"
	domain "github.com/ShineWorksMX/detailing-scheduler/internal/domain/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/handlers"
	infraRepo "github.com/ShineWorksMX/detailing-scheduler/internal/infra/repository"
	"github.com/ShineWorksMX/detailing-scheduler/internal/middleware"
	"github.com/ShineWorksMX/detailing-scheduler/internal/notify"
	ucBooking "github.com/ShineWorksMX/detailing-scheduler/internal/usecase/booking"
	"github.com/ShineWorksMX/detailing-scheduler/internal/validators"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	validators.RegisterBindingRules()

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	catalog := domain.NewCatalog(cfg.SlotCatalog)

	availabilityCache := cache.NewAvailabilityCache(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var notifyDispatcher *notify.Dispatcher
	if mailer, err := notify.NewMailer(cfg); err != nil {
		// sin correo el sitio sigue reservando; solo se pierde el aviso
		log.Printf("mailer disabled: %v", err)
	} else {
		notifyDispatcher = notify.NewDispatcher(mailer)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		catalog,
		availabilityCache,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		catalog,
		availabilityCache,
		auditDispatcher,
		notifyDispatcher,
		cfg.BusinessCity,
		cfg.Timezone,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		availabilityCache,
		auditDispatcher,
	)

	blockSlotUC := ucBooking.NewBlockSlot(
		bookingRepo,
		catalog,
		availabilityCache,
		auditDispatcher,
		cfg.Timezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		createBookingUC,
		catalog,
		cfg.Timezone,
		cfg.WhatsAppPhone,
	)

	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		updateStatusUC,
		blockSlotUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (panel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/bookings", bookingHandler.List)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.POST("/me/blocks", bookingHandler.Block)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
