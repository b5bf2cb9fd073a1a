package db

import (
	"log"
	"time"

	"github.com/ShineWorksMX/detailing-scheduler/internal/config"
	"github.com/ShineWorksMX/detailing-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Registros anteriores al campo kind: todos eran reservas de clientes,
	// salvo los bloqueos que se reconocen por su status.
	db.Exec(`
        UPDATE bookings
        SET kind = CASE WHEN status = 'blocked' THEN 'block' ELSE 'customer' END
        WHERE kind IS NULL OR kind = ''
    `)

	return db
}
