package repositories

import (
	"testing"

	"limpamais-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Delivery{}, &models.Order{}, &models.Sale{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createProduct(t *testing.T, db *gorm.DB, stock, minStock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:         "Detergente Neutro",
		Type:         models.ProductFinishedGood,
		Unit:         "un",
		CurrentStock: stock,
		MinStock:     minStock,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}
