package billing

import (
	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ApplyOrder adds a confirmed order total to the bill and marks the table
// occupied. EMPTY -> OCCUPIED, OCCUPIED -> OCCUPIED.
func ApplyOrder(t *entity.Table, amount decimal.Decimal) {
	t.CurrentBill = clamp(t.CurrentBill.Add(amount))
	t.Occupied = true
}

// ApplyPartialPayment takes amount off the raw bill, floored at zero. The
// table stays occupied.
func ApplyPartialPayment(t *entity.Table, amount decimal.Decimal) {
	t.CurrentBill = clamp(t.CurrentBill.Sub(amount))
}

// ApplyFullPayment settles the table: OCCUPIED -> EMPTY.
func ApplyFullPayment(t *entity.Table) {
	t.CurrentBill = decimal.Zero
	t.Occupied = false
	t.Guests = nil
}

// ToggleOccupancy is the operator override for marking a table reserved or
// free. It flips occupancy only and leaves the bill alone, so it is not a
// payment event and can leave an unoccupied table holding a bill.
func ToggleOccupancy(t *entity.Table) {
	t.Occupied = !t.Occupied
}

func clamp(bill decimal.Decimal) decimal.Decimal {
	if bill.IsNegative() {
		return decimal.Zero
	}
	return bill
}
