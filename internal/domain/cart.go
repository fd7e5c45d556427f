package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one product's presence in the cart. Title, Price and ImageRef
// are display attributes carried through from the catalog; the engine never
// interprets them.
type CartLine struct {
	ProductID uuid.UUID
	Title     string
	Price     Money
	ImageRef  string

	// Quantity is always >= 1: removing the last unit deletes the line.
	Quantity int
}

// Subtotal is Price * Quantity, recomputed on every call and never persisted.
func (l CartLine) Subtotal() Money {
	return Money{
		Amount:   l.Price.Amount.Mul(decimal.NewFromInt(int64(l.Quantity))),
		Currency: l.Price.Currency,
	}
}

// Cart is an ordered sequence of lines, unique by ProductID, insertion order
// preserved for display. Cart is a value: the mutation helpers return a new
// Cart with a fresh backing slice, so a Cart handed to a reader never changes
// underneath it.
type Cart struct {
	Lines []CartLine
}

// Find returns the line for productID, if any.
func (c Cart) Find(productID uuid.UUID) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// WithLine returns a copy of the cart with line appended.
func (c Cart) WithLine(line CartLine) Cart {
	lines := make([]CartLine, 0, len(c.Lines)+1)
	lines = append(lines, c.Lines...)
	lines = append(lines, line)
	return Cart{Lines: lines}
}

// WithQuantity returns a copy of the cart with the matching line's quantity
// replaced. The cart is returned unchanged if productID is not present.
func (c Cart) WithQuantity(productID uuid.UUID, quantity int) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ProductID == productID {
			line.Quantity = quantity
		}
		lines = append(lines, line)
	}
	return Cart{Lines: lines}
}

// Without returns a copy of the cart with the matching line deleted.
func (c Cart) Without(productID uuid.UUID) Cart {
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ProductID == productID {
			continue
		}
		lines = append(lines, line)
	}
	return Cart{Lines: lines}
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	if len(c.Lines) == 0 {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// Total sums the line subtotals. Lines are assumed to share one display
// currency; the currency of the first line is used, and an empty cart yields
// a zero Money.
func (c Cart) Total() Money {
	if len(c.Lines) == 0 {
		return Money{Amount: decimal.Zero}
	}

	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal().Amount)
	}

	return Money{
		Amount:   total,
		Currency: c.Lines[0].Price.Currency,
	}
}
