package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valid roles for User.
const (
	RoleAdmin    = "admin"
	RoleRetailer = "retailer"
)

// User is a portal account. Retailers carry a personal discount tier;
// an admin's discount is ignored for pricing.
type User struct {
	ID           string
	Username     string
	PasswordHash string          // bcrypt hash, never plaintext past registration
	Name         string          // shop / display name
	Role         string          // admin, retailer
	Discount     decimal.Decimal // percent 0-100, may be fractional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
