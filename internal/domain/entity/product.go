package entity

import (
	"encoding/json"
	"time"
)

// Product is a catalog part. Price is the base (MRP) amount in whole rupees;
// per-retailer pricing is derived from it, never stored here. Brand is the
// normalized value derived once at ingestion (catalog.DeriveBrand); the
// ordering flow treats the whole record as immutable.
type Product struct {
	ID         string
	Name       string
	PartNumber string
	Category   string
	Brand      string
	Price      int64 // base price, whole currency units
	Stock      int
	Attributes json.RawMessage // raw upstream fields, kept for re-ingestion
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
