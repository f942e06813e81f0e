package request

import "github.com/shopspring/decimal"

// PaymentRequest is a payment dialog submission. Amounts accept JSON numbers
// or numeric strings; omitted amounts are zero.
type PaymentRequest struct {
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Cash            decimal.Decimal `json:"cash"`
	Card            decimal.Decimal `json:"card"`
}
