package dto

// OrderLineResponse a snapshotted order line.
type OrderLineResponse struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// OrderResponse a submitted order with its lines.
type OrderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Date         string              `json:"date"`
	Status       string              `json:"status"`
	Total        int64               `json:"total"`
	Items        []OrderLineResponse `json:"items"`
}

// OrderListResponse order history, newest first.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}

// StatsResponse admin dashboard cards.
type StatsResponse struct {
	PendingCount     int   `json:"pending_count"`
	PackedCount      int   `json:"packed_count"`
	DeliveredRevenue int64 `json:"delivered_revenue"`
}
