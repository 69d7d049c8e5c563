package database

import (
	"github.com/pickngo/pickngo-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.DriverApplication{},
		&models.VehicleApplication{},
	)
	if err != nil {
		return err
	}

	// Update users table
	if db.Migrator().HasTable(&models.User{}) {
		columns := []string{
			"ADD COLUMN IF NOT EXISTS profile_image text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS user_type text DEFAULT 'client'",
		}

		for _, column := range columns {
			if err := db.Exec("ALTER TABLE users " + column).Error; err != nil {
				return err
			}
		}

		// Update constraint
		db.Exec(`ALTER TABLE users DROP CONSTRAINT IF EXISTS users_user_type_check`)
		db.Exec(`ALTER TABLE users ADD CONSTRAINT users_user_type_check CHECK (user_type IN ('business_owner', 'vehicle_owner', 'client', 'driver'))`)
	}

	// Applications submitted before review tracking was added have no status
	for _, table := range []string{"driver_applications", "vehicle_applications"} {
		if err := db.Exec(`ALTER TABLE ` + table + ` ADD COLUMN IF NOT EXISTS status text DEFAULT 'pending'`).Error; err != nil {
			return err
		}
		if err := db.Exec(`UPDATE ` + table + ` SET status = 'pending' WHERE status IS NULL OR status = ''`).Error; err != nil {
			return err
		}
		db.Exec(`ALTER TABLE ` + table + ` DROP CONSTRAINT IF EXISTS ` + table + `_status_check`)
		db.Exec(`ALTER TABLE ` + table + ` ADD CONSTRAINT ` + table + `_status_check CHECK (status IN ('pending', 'approved', 'rejected'))`)
	}

	return nil
}
