package entity

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a confirmed cart sent to the bar/kitchen
type Order struct {
	ID          uuid.UUID        `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableID     string           `gorm:"type:varchar(36);index" json:"table_id"`
	TableNumber int              `gorm:"not null" json:"table_number"`
	Items       string           `gorm:"type:text;not null" json:"items"`
	Status      enum.OrderStatus `gorm:"not null;default:0" json:"status"`
	Time        string           `gorm:"size:5" json:"time"`
	Total       decimal.Decimal  `gorm:"type:text;not null;default:'0'" json:"-"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`

	// Relationships
	Lines []OrderItem `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// MarshalJSON adds the display total and a millisecond timestamp
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total     float64 `json:"total"`
		Timestamp int64   `json:"timestamp"`
	}{
		Alias:     Alias(o),
		Total:     o.Total.Round(2).InexactFloat64(),
		Timestamp: o.CreatedAt.UnixMilli(),
	})
}

// BeforeCreate assigns the ID and keeps CreatedAt in UTC, as for Payment
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if !o.CreatedAt.IsZero() {
		o.CreatedAt = o.CreatedAt.UTC()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one cart line of a confirmed order
type OrderItem struct {
	ID        uuid.UUID            `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID   uuid.UUID            `gorm:"type:varchar(36);not null;index" json:"order_id"`
	ProductID string               `gorm:"size:36;not null;index" json:"product_id"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	Category  enum.ProductCategory `gorm:"size:32;not null" json:"category"`
	Quantity  int                  `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal      `gorm:"type:text;not null" json:"-"`
	Total     decimal.Decimal      `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time            `gorm:"index" json:"created_at"`
}

// MarshalJSON renders prices for display
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: oi.UnitPrice.Round(2).InexactFloat64(),
		Total:     oi.Total.Round(2).InexactFloat64(),
	})
}

// BeforeCreate assigns the ID and keeps CreatedAt in UTC, as for Payment
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	if !oi.CreatedAt.IsZero() {
		oi.CreatedAt = oi.CreatedAt.UTC()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// SortOrdersForDisplay returns a copy ordered for the kitchen board:
// preparing orders first, then served, newest first within each group.
func SortOrdersForDisplay(orders []Order) []Order {
	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Status.Rank(), sorted[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
