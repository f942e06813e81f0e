package entity

import (
	"encoding/json"

	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry
type Product struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Price    decimal.Decimal      `json:"-"`
	Category enum.ProductCategory `json:"category"`
}

// MarshalJSON renders the unit price for display
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.Price.Round(2).InexactFloat64(),
	})
}
