package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest credentials for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token plus the authenticated user and the screen to route to.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	View  string       `json:"view"`
}

// SessionResponse restored session: the user and the default view re-derived
// from the stored role.
type SessionResponse struct {
	User UserResponse `json:"user"`
	View string       `json:"view"`
}

// CreateRetailerRequest admin input to provision a retailer account
// (password arrives in plaintext and is hashed in the use case).
type CreateRetailerRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Username string          `json:"username" validate:"required,min=1,max=100"`
	Password string          `json:"password" validate:"required,min=8"`
	Discount decimal.Decimal `json:"discount" validate:"min=0,max=100"`
}

// UserResponse user output (never includes the password hash).
type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Discount  decimal.Decimal `json:"discount"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserListResponse retailer listing for the admin console.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}
