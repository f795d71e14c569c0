package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is an immutable record of a completed sale. Recording one always
// decrements the product's stock by Quantity.
type Sale struct {
	gorm.Model
	ProductID uint      `json:"product_id"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity"`
	Customer  string    `json:"customer"`
	Date      time.Time `json:"date"`
	Total     string    `json:"total"`
}

// NormalizeTotal parses a money amount given as text and returns its
// canonical decimal form.
func NormalizeTotal(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid total: %w", err)
	}
	return d.String(), nil
}

// SumTotals adds up the totals of the given sales. Entries that do not parse
// as a decimal are skipped.
func SumTotals(sales []Sale) string {
	sum := decimal.Zero
	for _, s := range sales {
		d, err := decimal.NewFromString(s.Total)
		if err != nil {
			continue
		}
		sum = sum.Add(d)
	}
	return sum.StringFixed(2)
}
