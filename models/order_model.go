package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending      = "pending"
	OrderInProduction = "in_production"
	OrderCompleted    = "completed"
	OrderCancelled    = "cancelled"
)

// ErrInvalidTransition marks a lifecycle move the current status does not
// allow. Callers answer it with a 400, not a 500.
var ErrInvalidTransition = errors.New("invalid order transition")

// Order tracks demand for manufacturing a given quantity of a product by a
// due date. Lifecycle: pending -> in_production -> completed, cancellable
// from pending or in_production.
type Order struct {
	gorm.Model
	RefCode   string    `json:"ref_code" gorm:"unique"`
	ProductID uint      `json:"product_id"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity"`
	Produced  int       `json:"produced" gorm:"default:0"`
	Status    string    `json:"status" gorm:"default:'pending'"`
	DueDate   time.Time `json:"due_date"`
}

// Advance moves a pending order into production.
func (o *Order) Advance() error {
	if o.Status != OrderPending {
		return fmt.Errorf("%w: cannot advance order in status %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderInProduction
	return nil
}

// Cancel aborts an order that has not finished yet.
func (o *Order) Cancel() error {
	if o.Status != OrderPending && o.Status != OrderInProduction {
		return fmt.Errorf("%w: cannot cancel order in status %s", ErrInvalidTransition, o.Status)
	}
	o.Status = OrderCancelled
	return nil
}

// RecordProduction adds produced units to an order in production. Produced
// clamps at the target quantity; reaching it completes the order.
func (o *Order) RecordProduction(amount int) error {
	if o.Status != OrderInProduction {
		return fmt.Errorf("%w: cannot record production for order in status %s", ErrInvalidTransition, o.Status)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: production amount must be positive, got %d", ErrInvalidTransition, amount)
	}

	o.Produced += amount
	if o.Produced >= o.Quantity {
		o.Produced = o.Quantity
		o.Status = OrderCompleted
	}
	return nil
}
