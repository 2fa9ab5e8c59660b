package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmotors/spares-api/internal/domain/cart"
)

func TestAdd_MergesQuantityKeepsFirstPrice(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Brake Shoe", "BS-204", 2, 450)
	// second add with a different unit price: the locked-in snapshot wins
	c.Add("p1", "Brake Shoe", "BS-204", 3, 400)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5), lines[0].Quantity)
	assert.Equal(t, int64(450), lines[0].UnitPrice)
}

func TestAdd_IgnoresQuantityBelowOne(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Brake Shoe", "BS-204", 0, 450)
	assert.Equal(t, 0, c.Len())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	c := cart.New()
	c.Add("p2", "Clutch Plate", "CP-110", 1, 700)
	c.Add("p1", "Brake Shoe", "BS-204", 1, 450)
	c.Add("p3", "Head Lamp", "HL-330", 1, 320)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "p2", lines[0].ProductID)
	assert.Equal(t, "p1", lines[1].ProductID)
	assert.Equal(t, "p3", lines[2].ProductID)
}

func TestSetQuantity_BelowOneIsNoopNotRemoval(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Brake Shoe", "BS-204", 2, 450)

	c.SetQuantity("p1", 0)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)

	c.SetQuantity("p1", 7)
	assert.Equal(t, int64(7), c.Lines()[0].Quantity)
}

func TestSetQuantity_UnknownProductIsNoop(t *testing.T) {
	c := cart.New()
	c.SetQuantity("ghost", 3)
	assert.Equal(t, 0, c.Len())
}

func TestRemove(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Brake Shoe", "BS-204", 1, 450)
	c.Add("p2", "Clutch Plate", "CP-110", 1, 700)

	c.Remove("p1")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)

	// absent product: no-op
	c.Remove("p1")
	assert.Equal(t, 1, c.Len())

	// re-adding after removal works and index stays consistent
	c.Add("p1", "Brake Shoe", "BS-204", 4, 450)
	c.SetQuantity("p2", 9)
	lines = c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(9), lines[0].Quantity)
	assert.Equal(t, int64(4), lines[1].Quantity)
}

func TestClear(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Brake Shoe", "BS-204", 1, 450)
	c.Clear()
	assert.Equal(t, 0, c.Len())

	c.Add("p1", "Brake Shoe", "BS-204", 1, 450)
	assert.Equal(t, 1, c.Len())
}

func TestInvoice(t *testing.T) {
	c := cart.New()
	c.Add("p1", "Brake Shoe", "BS-204", 2, 450)

	b := c.Invoice()
	assert.Equal(t, int64(900), b.Subtotal)
	assert.Equal(t, int64(18), b.PackingCharge)
	assert.Equal(t, int64(166), b.GST)
	assert.Equal(t, int64(1084), b.GrandTotal)
}
