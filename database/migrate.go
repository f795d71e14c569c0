// database/migrate.go
package database

import (
	"limpamais-api/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Delivery{},
		&models.Order{},
		&models.Sale{},
	)
}
