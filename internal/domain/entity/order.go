package entity

import "time"

// Status is the order fulfilment marker. Transitions are strictly linear:
// Pending -> Packed -> Delivered. No skipping, no reverse, no cancellation.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPacked    Status = "Packed"
	StatusDelivered Status = "Delivered"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPacked, StatusDelivered:
		return true
	}
	return false
}

// Next returns the sole valid successor status. Delivered is terminal and
// unknown values have no successor; both return ok=false with s unchanged.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusPacked, true
	case StatusPacked:
		return StatusDelivered, true
	}
	return s, false
}

// Order is a submitted purchase order. Created atomically with its lines;
// immutable afterwards except for Status. Total is the invoice grand total
// computed from the lines at creation time and is never recomputed from
// current prices.
type Order struct {
	ID           string
	UserID       string
	CustomerName string // purchasing user's display name, joined on read
	Date         time.Time
	Status       Status
	Total        int64
	Lines        []OrderLine
}

// OrderLine snapshots a cart line at submission: product name and unit price
// as they were when the order was placed.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice int64
}
