// Package billing holds the money arithmetic and the table bill lifecycle.
// Nothing here touches storage; callers load a table, apply a transition and
// save it.
package billing

import (
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quote is the payment dialog arithmetic for one attempt. Amounts keep full
// precision; round with Display only when rendering.
type Quote struct {
	Total           decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	Final           decimal.Decimal
	Cash            decimal.Decimal
	Card            decimal.Decimal
	Tendered        decimal.Decimal
	Remaining       decimal.Decimal
}

// DiscountAmount returns total * percent / 100
func DiscountAmount(total, percent decimal.Decimal) decimal.Decimal {
	return total.Mul(percent).Div(hundred)
}

// Discounted returns total - total * percent / 100
func Discounted(total, percent decimal.Decimal) decimal.Decimal {
	return total.Sub(DiscountAmount(total, percent))
}

// Calculate builds a Quote. Remaining may be negative (overpayment); it is
// not clamped so that validation can compare exact values.
func Calculate(total, discountPercent, cash, card decimal.Decimal) Quote {
	discount := DiscountAmount(total, discountPercent)
	final := total.Sub(discount)
	tendered := cash.Add(card)
	return Quote{
		Total:           total,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		Final:           final,
		Cash:            cash,
		Card:            card,
		Tendered:        tendered,
		Remaining:       final.Sub(tendered),
	}
}

// ValidateInput checks the ranges of a payment attempt before any arithmetic
// that leads to a mutation.
func ValidateInput(discountPercent, cash, card decimal.Decimal) error {
	var fieldErrors []apperror.FieldError
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount_percent", Message: "must be between 0 and 100"})
	}
	if cash.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cash", Message: "must not be negative"})
	}
	if card.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "card", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Display rounds an amount to kuruş for rendering
func Display(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}

// ClampDisplay renders a remaining balance the way the dialog shows it,
// never below zero.
func ClampDisplay(amount decimal.Decimal) float64 {
	if amount.IsNegative() {
		return 0
	}
	return Display(amount)
}
