package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Position is a table's location on the floor plan
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table represents a table on the floor plan and its running bill
type Table struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string          `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Shape       enum.TableShape `gorm:"size:10;not null" json:"type"`
	Occupied    bool            `gorm:"not null;default:false" json:"occupied"`
	Guests      *int            `json:"guests,omitempty"`
	CurrentBill decimal.Decimal `gorm:"type:text;not null;default:'0'" json:"-"`
	Position    Position        `gorm:"embedded;embeddedPrefix:position_" json:"position"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MarshalJSON renders the bill rounded for display
func (t Table) MarshalJSON() ([]byte, error) {
	type Alias Table
	return json.Marshal(&struct {
		Alias
		CurrentBill float64         `json:"current_bill"`
		State       enum.TableState `json:"state"`
	}{
		Alias:       Alias(t),
		CurrentBill: t.CurrentBill.Round(2).InexactFloat64(),
		State:       t.State(),
	})
}

// TableName returns the table name for the Table model
func (Table) TableName() string {
	return "floor_tables"
}

// State derives the billing state. An occupied table with a zero bill
// (forced occupancy, no orders yet) still reports OCCUPIED.
func (t *Table) State() enum.TableState {
	if t.Occupied {
		return enum.TableStateOccupied
	}
	return enum.TableStateEmpty
}

// Number returns the numeric part of names like "M-5", or 0 if there is none.
func (t *Table) Number() int {
	idx := strings.LastIndex(t.Name, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(t.Name[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
