// database/seeder.go
package database

import (
	"errors"
	"log"

	"limpamais-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the default operator account when the users table is fresh.
func Seed(db *gorm.DB) {
	SeedAdminUser(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("email = ?", "admin@limpamais.local").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Role:     models.RoleOperator,
		Email:    "admin@limpamais.local",
		Password: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}
}
