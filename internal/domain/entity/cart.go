package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps one cart line, after merging
const MaxLineQuantity = 999

// ErrLineQuantity is returned when a line would leave 1..MaxLineQuantity
var ErrLineQuantity = fmt.Errorf("line quantity must be between 1 and %d", MaxLineQuantity)

// CartLine is a product and its quantity in an open cart
type CartLine struct {
	Product  Product
	Quantity int
}

// Total returns price * quantity for the line
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the transient order being built for one table. It is never stored;
// confirming it turns it into an Order.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add puts qty units of p in the cart, merging with an existing line.
// Lines keep the order in which their product was first added. The cart is
// unchanged when qty or the merged quantity falls outside 1..MaxLineQuantity.
func (c *Cart) Add(p Product, qty int) error {
	if qty < 1 || qty > MaxLineQuantity {
		return ErrLineQuantity
	}
	for i := range c.lines {
		if c.lines[i].Product.ID != p.ID {
			continue
		}
		if c.lines[i].Quantity > MaxLineQuantity-qty {
			return ErrLineQuantity
		}
		c.lines[i].Quantity += qty
		return nil
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: qty})
	return nil
}

// UpdateQuantity changes a line by delta and drops it once it reaches zero.
// Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID string, delta int) error {
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if delta > MaxLineQuantity-c.lines[i].Quantity {
			return ErrLineQuantity
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return nil
	}
	return nil
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of price * quantity over all lines
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// Summary renders "2x EFES PİLSEN, 1x MOJİTO"
func (c *Cart) Summary() string {
	parts := make([]string, len(c.lines))
	for i, l := range c.lines {
		parts[i] = fmt.Sprintf("%dx %s", l.Quantity, l.Product.Name)
	}
	return strings.Join(parts, ", ")
}
