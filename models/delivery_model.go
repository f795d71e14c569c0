package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	MovementIncoming           = "incoming"
	MovementOutgoing           = "outgoing"
	MovementProductionIncoming = "production_incoming"
	MovementProductionOutgoing = "production_outgoing"
)

// Delivery is a ledger entry: an immutable record of a single stock-affecting
// movement. PreviousStock and CurrentStock are snapshots of the product's
// stock immediately before and after the entry was applied.
type Delivery struct {
	gorm.Model
	RefCode       string    `json:"ref_code" gorm:"unique"`
	ProductID     uint      `json:"product_id"`
	Product       Product   `json:"product" gorm:"foreignKey:ProductID"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	PreviousStock int       `json:"previous_stock"`
	CurrentStock  int       `json:"current_stock"`
}

// MovementDelta returns the signed stock effect of a movement: positive for
// incoming types, negative for outgoing types.
func MovementDelta(movementType string, quantity int) (int, error) {
	switch movementType {
	case MovementIncoming, MovementProductionIncoming:
		return quantity, nil
	case MovementOutgoing, MovementProductionOutgoing:
		return -quantity, nil
	}
	return 0, fmt.Errorf("unknown movement type: %s", movementType)
}
