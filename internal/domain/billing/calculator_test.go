package billing

import (
	"testing"

	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscounted(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		percent  string
		expected string
	}{
		{"no discount", "450", "0", "450"},
		{"ten percent", "1000", "10", "900"},
		{"full discount", "320", "100", "0"},
		{"zero total", "0", "50", "0"},
		{"fractional percent", "100", "12.5", "87.5"},
		{"repeating decimal kept exact", "10", "33.3333", "6.66667"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Discounted(d(tt.total), d(tt.percent))
			if !got.Equal(d(tt.expected)) {
				t.Errorf("Discounted(%s, %s) = %s, want %s", tt.total, tt.percent, got, tt.expected)
			}
		})
	}
}

func TestCalculate_RemainingNotClamped(t *testing.T) {
	q := Calculate(d("450"), d("0"), d("500"), d("0"))

	if !q.Remaining.Equal(d("-50")) {
		t.Errorf("expected remaining -50, got %s", q.Remaining)
	}
	if ClampDisplay(q.Remaining) != 0 {
		t.Errorf("expected clamped display 0, got %v", ClampDisplay(q.Remaining))
	}
}

func TestCalculate_SplitTender(t *testing.T) {
	q := Calculate(d("1000"), d("10"), d("500"), d("300"))

	if !q.DiscountAmount.Equal(d("100")) {
		t.Errorf("expected discount 100, got %s", q.DiscountAmount)
	}
	if !q.Final.Equal(d("900")) {
		t.Errorf("expected final 900, got %s", q.Final)
	}
	if !q.Tendered.Equal(d("800")) {
		t.Errorf("expected tendered 800, got %s", q.Tendered)
	}
	if !q.Remaining.Equal(d("100")) {
		t.Errorf("expected remaining 100, got %s", q.Remaining)
	}
}

func TestCalculate_IsPure(t *testing.T) {
	first := Calculate(d("780"), d("15"), d("100"), d("200"))
	second := Calculate(d("780"), d("15"), d("100"), d("200"))

	if !first.Final.Equal(second.Final) || !first.Remaining.Equal(second.Remaining) {
		t.Error("expected identical results for identical inputs")
	}
}

func TestDisplay_RoundsOnlyAtTheEnd(t *testing.T) {
	// three partial payments of a third each must not drift
	bill := d("100")
	third := bill.Div(d("3"))
	remaining := bill.Sub(third).Sub(third).Sub(third)

	if Display(remaining) != 0 {
		t.Errorf("expected 0 after three thirds, got %v", Display(remaining))
	}
	if Display(d("87.456")) != 87.46 {
		t.Errorf("expected 87.46, got %v", Display(d("87.456")))
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name     string
		discount string
		cash     string
		card     string
		field    string
	}{
		{"valid", "10", "100", "50", ""},
		{"discount bounds inclusive", "100", "0", "0", ""},
		{"discount above 100", "100.01", "0", "0", "discount_percent"},
		{"negative discount", "-1", "0", "0", "discount_percent"},
		{"negative cash", "0", "-5", "0", "cash"},
		{"negative card", "0", "0", "-0.01", "card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(d(tt.discount), d(tt.cash), d(tt.card))
			if tt.field == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !apperror.IsInvalidInput(err) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
			appErr := apperror.GetAppError(err)
			if len(appErr.Errors) != 1 || appErr.Errors[0].Field != tt.field {
				t.Errorf("expected field error on %q, got %+v", tt.field, appErr.Errors)
			}
		})
	}
}

func TestPartialRejection(t *testing.T) {
	tests := []struct {
		name     string
		bill     string
		discount string
		cash     string
		card     string
		expected enum.RejectionReason
	}{
		{"nothing tendered", "450", "0", "0", "0", enum.RejectionNoFundsTendered},
		{"nothing tendered on empty bill", "0", "0", "0", "0", enum.RejectionNoFundsTendered},
		{"under the discounted total", "1000", "10", "500", "300", enum.RejectionNone},
		{"exactly the discounted total", "1000", "10", "900", "0", enum.RejectionAlreadySettled},
		{"over the total", "450", "0", "500", "0", enum.RejectionAlreadySettled},
		{"cleared bill", "0", "0", "10", "0", enum.RejectionAlreadySettled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(d(tt.bill), d(tt.discount), d(tt.cash), d(tt.card))
			if got := PartialRejection(q); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFullRejection(t *testing.T) {
	tests := []struct {
		name     string
		bill     string
		discount string
		cash     string
		card     string
		expected enum.RejectionReason
	}{
		{"exact cash", "450", "0", "450", "0", enum.RejectionNone},
		{"short after discount", "1000", "10", "500", "300", enum.RejectionInsufficientFunds},
		{"split covers discounted total", "1000", "10", "500", "400", enum.RejectionNone},
		{"overpayment absorbed", "320", "0", "400", "0", enum.RejectionNone},
		{"nothing on an open bill", "320", "0", "0", "0", enum.RejectionInsufficientFunds},
		{"cleared bill", "0", "0", "0", "0", enum.RejectionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(d(tt.bill), d(tt.discount), d(tt.cash), d(tt.card))
			if got := FullRejection(q); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
