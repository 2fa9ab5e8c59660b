package dto

// AddCartItemRequest puts qty units of a product into the draft order.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
}

// UpdateCartItemRequest replaces a line's quantity.
type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"min=1"`
}

// CartLineResponse one draft-order line with its locked-in unit price.
type CartLineResponse struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PartNumber string `json:"part_number"`
	Quantity   int64  `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	LineTotal  int64  `json:"line_total"`
}

// InvoiceResponse the invoice breakdown for a cart or an order.
type InvoiceResponse struct {
	Subtotal      int64 `json:"subtotal"`
	PackingCharge int64 `json:"packing_charge"`
	GST           int64 `json:"gst"`
	GrandTotal    int64 `json:"grand_total"`
}

// CartResponse the full draft order with its invoice summary.
type CartResponse struct {
	Lines   []CartLineResponse `json:"lines"`
	Invoice InvoiceResponse    `json:"invoice"`
}
