package repositories

import (
	"errors"
	"time"

	"limpamais-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProductNotFound = errors.New("product not found")

// StockRepository owns every mutation of a product's current stock. Each
// write locks the product row for the duration of the transaction, so
// concurrent movements against the same product serialize and the ledger
// snapshots stay consistent with the product's stock.
type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{DB: db}
}

// RecordMovement applies a ledger entry and its stock adjustment in one
// transaction. The movement is rejected when the product does not exist;
// nothing is written in that case. Stock is not clamped at zero.
func (r *StockRepository) RecordMovement(delivery *models.Delivery) error {
	delta, err := models.MovementDelta(delivery.Type, delivery.Quantity)
	if err != nil {
		return err
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		product, err := lockProduct(tx, delivery.ProductID)
		if err != nil {
			return err
		}

		delivery.PreviousStock = product.CurrentStock
		product.CurrentStock += delta
		delivery.CurrentStock = product.CurrentStock
		if delivery.Date.IsZero() {
			delivery.Date = time.Now()
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("current_stock", product.CurrentStock).Error; err != nil {
			return err
		}
		if err := tx.Create(delivery).Error; err != nil {
			return err
		}

		delivery.Product = *product
		return nil
	})
}

// RecordSale persists a sale and decrements the product's stock under the
// same per-product lock as ledger movements.
func (r *StockRepository) RecordSale(sale *models.Sale) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		product, err := lockProduct(tx, sale.ProductID)
		if err != nil {
			return err
		}

		product.CurrentStock -= sale.Quantity
		if sale.Date.IsZero() {
			sale.Date = time.Now()
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("current_stock", product.CurrentStock).Error; err != nil {
			return err
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		sale.Product = *product
		return nil
	})
}

func lockProduct(tx *gorm.DB, productID uint) (*models.Product, error) {
	var product models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}
