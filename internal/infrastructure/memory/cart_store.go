// Package memory holds the per-session draft orders. Carts are deliberately
// not persisted: a draft is destroyed on submission and on logout, so an
// in-process map is the whole store.
package memory

import (
	"sync"

	"github.com/jpmotors/spares-api/internal/application/checkout"
	"github.com/jpmotors/spares-api/internal/domain/cart"
)

var _ checkout.CartStore = (*CartStore)(nil)

// CartStore maps user id -> draft order.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// NewCartStore builds an empty store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*cart.Cart)}
}

// Get returns the user's cart, creating an empty one on first use.
func (s *CartStore) Get(userID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = cart.New()
		s.carts[userID] = c
	}
	return c
}

// Clear drops the user's cart entirely.
func (s *CartStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
