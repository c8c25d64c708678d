package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/boxfit/gym-scheduler/internal/config"
	booking "github.com/boxfit/gym-scheduler/internal/domain/booking"
	"github.com/boxfit/gym-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
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
		&models.User{},
		&models.Slot{},
		&models.Reservation{},
		&models.ManagerAttendee{},
		&models.Workout{},
		&models.PersonalRecord{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedGrid(db); err != nil {
		log.Fatalf("failed to seed slot grid: %v", err)
	}

	return db
}

// SeedGrid inserts any canonical (day, time) combination missing from the
// slots table. The grid also self-heals on read; this startup pass just
// avoids an empty schedule on first boot. Duplicate inserts from concurrent
// instances are ignored.
func SeedGrid(db *gorm.DB) error {
	var existing []booking.SlotKey
	if err := db.Model(&models.Slot{}).
		Select("day", "time").
		Find(&existing).Error; err != nil {
		return err
	}

	missing := booking.MissingSlotKeys(existing)
	if len(missing) == 0 {
		return nil
	}

	slots := make([]models.Slot, 0, len(missing))
	for _, k := range missing {
		slots = append(slots, models.Slot{
			Day:       k.Day,
			Time:      k.Time,
			Capacity:  models.DefaultSlotCapacity,
			Available: true,
		})
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&slots).Error
}
