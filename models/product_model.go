package models

import "gorm.io/gorm"

const (
	ProductRawMaterial  = "raw_material"
	ProductInputGood    = "input_good"
	ProductFinishedGood = "finished_good"
)

type Product struct {
	gorm.Model
	Name         string `json:"name"`
	Type         string `json:"type"`
	Capacity     string `json:"capacity"` // ex: "500ml", "1L"
	Unit         string `json:"unit"`     // ex: "un", "litre"
	CurrentStock int    `json:"current_stock" gorm:"default:0"`
	MinStock     int    `json:"min_stock" gorm:"default:0"`
}

// LowStock reports whether the product is at or below its minimum level.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.MinStock
}
