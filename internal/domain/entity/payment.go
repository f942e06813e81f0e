package entity

import (
	"encoding/json"
	"time"

	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is an accepted payment attempt. Rejected attempts are never stored.
type Payment struct {
	ID              uuid.UUID        `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableID         string           `gorm:"type:varchar(36);not null;index" json:"table_id"`
	Kind            enum.PaymentKind `gorm:"size:10;not null" json:"kind"`
	DiscountPercent decimal.Decimal  `gorm:"type:text;not null" json:"-"`
	BillBefore      decimal.Decimal  `gorm:"type:text;not null" json:"-"`
	FinalTotal      decimal.Decimal  `gorm:"type:text;not null" json:"-"`
	Cash            decimal.Decimal  `gorm:"type:text;not null" json:"-"`
	Card            decimal.Decimal  `gorm:"type:text;not null" json:"-"`
	BillAfter       decimal.Decimal  `gorm:"type:text;not null" json:"-"`
	CreatedAt       time.Time        `gorm:"index" json:"created_at"`
}

// Tendered is cash plus card
func (p *Payment) Tendered() decimal.Decimal {
	return p.Cash.Add(p.Card)
}

// MarshalJSON renders amounts for display
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		DiscountPercent float64 `json:"discount_percent"`
		BillBefore      float64 `json:"bill_before"`
		FinalTotal      float64 `json:"final_total"`
		Cash            float64 `json:"cash"`
		Card            float64 `json:"card"`
		Tendered        float64 `json:"tendered"`
		BillAfter       float64 `json:"bill_after"`
	}{
		Alias:           Alias(p),
		DiscountPercent: p.DiscountPercent.InexactFloat64(),
		BillBefore:      p.BillBefore.Round(2).InexactFloat64(),
		FinalTotal:      p.FinalTotal.Round(2).InexactFloat64(),
		Cash:            p.Cash.Round(2).InexactFloat64(),
		Card:            p.Card.Round(2).InexactFloat64(),
		Tendered:        p.Tendered().Round(2).InexactFloat64(),
		BillAfter:       p.BillAfter.Round(2).InexactFloat64(),
	})
}

// BeforeCreate assigns the ID and stores CreatedAt in UTC. Day windows compare
// created_at as text, so every row must carry the same offset.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if !p.CreatedAt.IsZero() {
		p.CreatedAt = p.CreatedAt.UTC()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
