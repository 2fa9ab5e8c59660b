// Package pricing computes per-retailer unit prices and invoice breakdowns.
// All amounts are whole currency units (rupees). The rounding directions are
// fixed business rules: unit price truncates toward zero, every invoice
// charge rounds up.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jpmotors/spares-api/internal/domain/entity"
)

var (
	hundred     = decimal.NewFromInt(100)
	packingRate = decimal.NewFromFloat(0.02) // packing & forwarding, 2%
	gstRate     = decimal.NewFromFloat(0.18) // IGST, 18%
)

// UnitPrice returns the price a caller pays per unit. Admins always see the
// base price; retailers get floor(base * (100 - discount) / 100). Discount
// may be fractional, hence the decimal arithmetic before truncation.
func UnitPrice(basePrice int64, role string, discount decimal.Decimal) int64 {
	if role == entity.RoleAdmin {
		return basePrice
	}
	return decimal.NewFromInt(basePrice).
		Mul(hundred.Sub(discount)).
		Div(hundred).
		Floor().
		IntPart()
}

// Line is the minimal input for an invoice computation.
type Line struct {
	UnitPrice int64
	Quantity  int64
}

// Breakdown is the full invoice: subtotal, 2% packing charge (ceil), 18% GST
// on subtotal+packing (ceil), and the grand total.
type Breakdown struct {
	Subtotal      int64
	PackingCharge int64
	GST           int64
	GrandTotal    int64
}

// Compute derives the invoice breakdown from the given lines. Inputs are
// assumed valid (non-negative price and quantity); there are no error cases.
func Compute(lines []Line) Breakdown {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice * l.Quantity
	}

	packing := decimal.NewFromInt(subtotal).Mul(packingRate).Ceil().IntPart()
	taxable := subtotal + packing
	gst := decimal.NewFromInt(taxable).Mul(gstRate).Ceil().IntPart()

	return Breakdown{
		Subtotal:      subtotal,
		PackingCharge: packing,
		GST:           gst,
		GrandTotal:    taxable + gst,
	}
}
