package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/cart"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/pricing"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

// UseCase drives the draft order: cart edits and the atomic submission.
type UseCase struct {
	carts    CartStore
	users    repository.UserRepository
	products repository.ProductRepository
	tx       TxRunner
}

// NewUseCase builds the checkout use case.
func NewUseCase(carts CartStore, users repository.UserRepository, products repository.ProductRepository, tx TxRunner) *UseCase {
	return &UseCase{carts: carts, users: users, products: products, tx: tx}
}

// View returns the current draft order with its invoice summary.
func (uc *UseCase) View(userID string) *dto.CartResponse {
	return toCartResponse(uc.carts.Get(userID))
}

// AddItem puts qty units of a product into the cart. The unit price is
// locked here, at the caller's current discount tier; a later tier change
// does not touch existing lines. A quantity below 1 is a silent no-op.
func (uc *UseCase) AddItem(userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	c := uc.carts.Get(userID)
	if in.Quantity < 1 {
		return toCartResponse(c), nil
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	unit := pricing.UnitPrice(product.Price, user.Role, user.Discount)
	c.Add(product.ID, product.Name, product.PartNumber, in.Quantity, unit)
	return toCartResponse(c), nil
}

// SetQuantity replaces a line's quantity. Below 1 or unknown product: no-op.
func (uc *UseCase) SetQuantity(userID, productID string, qty int64) *dto.CartResponse {
	c := uc.carts.Get(userID)
	c.SetQuantity(productID, qty)
	return toCartResponse(c)
}

// RemoveItem drops a line; removing an absent product is a no-op.
func (uc *UseCase) RemoveItem(userID, productID string) *dto.CartResponse {
	c := uc.carts.Get(userID)
	c.Remove(productID)
	return toCartResponse(c)
}

// Submit turns the cart into a Pending order. The header and all lines are
// written in one transaction; the cart is cleared only after the commit, so
// a failed write leaves the draft intact for a manual retry.
func (uc *UseCase) Submit(ctx context.Context, userID string) (*dto.OrderResponse, error) {
	c := uc.carts.Get(userID)
	if c.Len() == 0 {
		return nil, domain.ErrEmptyCart
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	breakdown := c.Invoice()
	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		UserID:       userID,
		CustomerName: user.Name,
		Date:         now,
		Status:       entity.StatusPending,
		Total:        breakdown.GrandTotal,
	}
	for _, l := range c.Lines() {
		order.Lines = append(order.Lines, entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	err = uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Create(order)
	})
	if err != nil {
		return nil, err
	}

	uc.carts.Clear(userID)
	return toOrderResponse(order), nil
}

func toCartResponse(c *cart.Cart) *dto.CartResponse {
	lines := c.Lines()
	resp := &dto.CartResponse{Lines: make([]dto.CartLineResponse, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.CartLineResponse{
			ProductID:  l.ProductID,
			Name:       l.Name,
			PartNumber: l.PartNumber,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			LineTotal:  l.UnitPrice * l.Quantity,
		})
	}
	b := c.Invoice()
	resp.Invoice = dto.InvoiceResponse{
		Subtotal:      b.Subtotal,
		PackingCharge: b.PackingCharge,
		GST:           b.GST,
		GrandTotal:    b.GrandTotal,
	}
	return resp
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		CustomerName: o.CustomerName,
		Date:         o.Date.Format("2006-01-02"),
		Status:       string(o.Status),
		Total:        o.Total,
		Items:        make([]dto.OrderLineResponse, 0, len(o.Lines)),
	}
	for _, l := range o.Lines {
		resp.Items = append(resp.Items, dto.OrderLineResponse{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.UnitPrice * l.Quantity,
		})
	}
	return resp
}
