// Package cart holds a retailer's draft order. A cart exists only for the
// duration of a session: it is destroyed on submission and on logout, and is
// never persisted.
package cart

import (
	"github.com/jpmotors/spares-api/internal/domain/pricing"
)

// Line is one draft-order entry. UnitPrice is locked when the product is
// first added and is not recomputed if the retailer's discount or the
// catalog price changes afterwards.
type Line struct {
	ProductID  string
	Name       string
	PartNumber string
	Quantity   int64
	UnitPrice  int64
}

// Cart is an insertion-ordered set of lines keyed by product.
// Not safe for concurrent use; each session is a single logical actor.
type Cart struct {
	lines []Line
	index map[string]int // product id -> position in lines
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add merges qty into an existing line (keeping its locked unit price) or
// appends a new line priced at unitPrice. Quantities below 1 are ignored.
func (c *Cart) Add(productID, name, partNumber string, qty, unitPrice int64) {
	if qty < 1 {
		return
	}
	if i, ok := c.index[productID]; ok {
		c.lines[i].Quantity += qty
		return
	}
	c.index[productID] = len(c.lines)
	c.lines = append(c.lines, Line{
		ProductID:  productID,
		Name:       name,
		PartNumber: partNumber,
		Quantity:   qty,
		UnitPrice:  unitPrice,
	})
}

// SetQuantity replaces a line's quantity. A target below 1 or an unknown
// product is a no-op, not a removal.
func (c *Cart) SetQuantity(productID string, qty int64) {
	if qty < 1 {
		return
	}
	if i, ok := c.index[productID]; ok {
		c.lines[i].Quantity = qty
	}
}

// Remove deletes the line for productID if present; no-op otherwise.
func (c *Cart) Remove(productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Invoice feeds the cart's lines to the pricing engine.
func (c *Cart) Invoice() pricing.Breakdown {
	lines := make([]pricing.Line, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, pricing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	return pricing.Compute(lines)
}
