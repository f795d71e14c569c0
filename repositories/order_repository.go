package repositories

import (
	"errors"

	"limpamais-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository serializes lifecycle transitions the same way
// StockRepository serializes stock writes: the order row is locked for the
// duration of the transaction, so concurrent transitions against the same
// order cannot lose a produced increment.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Transition loads the order under a row lock, applies the lifecycle change
// and persists status and produced inside the same transaction. The order is
// reloaded with its product after commit for the response payload.
func (r *OrderRepository) Transition(orderID uint, apply func(*models.Order) error) (*models.Order, error) {
	var order models.Order

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := apply(&order); err != nil {
			return err
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Updates(map[string]interface{}{"status": order.Status, "produced": order.Produced}).Error
	})
	if err != nil {
		return nil, err
	}

	if err := r.DB.Preload("Product").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
