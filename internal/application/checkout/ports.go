package checkout

import (
	"context"

	"github.com/jpmotors/spares-api/internal/domain/cart"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

// CartStore hands out the per-user draft order. Get always returns a cart,
// creating an empty one on first use.
type CartStore interface {
	Get(userID string) *cart.Cart
	Clear(userID string)
}

// TxRunner executes fn inside a database transaction with an order
// repository bound to it. Submission uses it so the order header and its
// lines commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
