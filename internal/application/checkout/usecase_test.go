package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmotors/spares-api/internal/application/checkout"
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/repository"
	"github.com/jpmotors/spares-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(*entity.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List() ([]*entity.User, error)              { return nil, nil }
func (f *fakeUserRepo) Delete(string) error                        { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }

// fakeOrderRepo records the order handed to Create.
type fakeOrderRepo struct {
	created *entity.Order
	fail    error
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	if f.fail != nil {
		return f.fail
	}
	f.created = o
	return nil
}
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error)      { return nil, nil }
func (f *fakeOrderRepo) List() ([]*entity.Order, error)             { return nil, nil }
func (f *fakeOrderRepo) ListByUser(string) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) UpdateStatus(string, entity.Status) error   { return nil }

// fakeTxRunner runs the callback directly against the fake order repo.
type fakeTxRunner struct {
	orders *fakeOrderRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(f.orders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	retailerID = "user-retailer-1"
	clutchID   = "prod-clutch"
	brakeID    = "prod-brake"
)

func newFixture(t *testing.T) (*checkout.UseCase, *memory.CartStore, *fakeOrderRepo) {
	t.Helper()
	users := &fakeUserRepo{users: map[string]*entity.User{
		retailerID: {
			ID:       retailerID,
			Name:     "Sharma Auto Spares",
			Role:     entity.RoleRetailer,
			Discount: decimal.NewFromInt(10),
		},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		clutchID: {ID: clutchID, Name: "Clutch Plate", PartNumber: "JP-CL-1001", Price: 500},
		brakeID:  {ID: brakeID, Name: "Brake Shoe", PartNumber: "JP-BR-2034", Price: 380},
	}}
	orders := &fakeOrderRepo{}
	carts := memory.NewCartStore()
	uc := checkout.NewUseCase(carts, users, products, &fakeTxRunner{orders: orders})
	return uc, carts, orders
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_LocksDiscountedUnitPrice(t *testing.T) {
	uc, _, _ := newFixture(t)

	// base 500, 10% discount -> 450
	out, err := uc.AddItem(retailerID, dto.AddCartItemRequest{ProductID: clutchID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)

	assert.Equal(t, int64(450), out.Lines[0].UnitPrice)
	assert.Equal(t, int64(900), out.Lines[0].LineTotal)
}

func TestAddItem_UnknownProductReturnsNotFound(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.AddItem(retailerID, dto.AddCartItemRequest{ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_QuantityBelowOneIsANoOp(t *testing.T) {
	uc, _, _ := newFixture(t)

	out, err := uc.AddItem(retailerID, dto.AddCartItemRequest{ProductID: clutchID, Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, out.Lines, "quantity 0 must not create a line")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_EmptyCartIsRejected(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.Submit(context.Background(), retailerID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestSubmit_CreatesPendingOrderAndClearsCart(t *testing.T) {
	uc, carts, orders := newFixture(t)

	_, err := uc.AddItem(retailerID, dto.AddCartItemRequest{ProductID: clutchID, Quantity: 2})
	require.NoError(t, err)

	out, err := uc.Submit(context.Background(), retailerID)
	require.NoError(t, err)

	// subtotal 900, packing ceil(18)=18, gst ceil(0.18*918)=166, total 1084
	assert.Equal(t, "Pending", out.Status)
	assert.Equal(t, int64(1084), out.Total)
	assert.Equal(t, "Sharma Auto Spares", out.CustomerName)

	require.NotNil(t, orders.created, "the order must reach the repository")
	assert.Equal(t, entity.StatusPending, orders.created.Status)
	require.Len(t, orders.created.Lines, 1)
	assert.Equal(t, orders.created.ID, orders.created.Lines[0].OrderID)

	assert.Equal(t, 0, carts.Get(retailerID).Len(), "cart must be empty after submission")
}

func TestSubmit_FailedWriteKeepsTheCart(t *testing.T) {
	uc, carts, orders := newFixture(t)
	orders.fail = errors.New("connection reset")

	_, err := uc.AddItem(retailerID, dto.AddCartItemRequest{ProductID: brakeID, Quantity: 5})
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), retailerID)
	require.Error(t, err)

	assert.Equal(t, 1, carts.Get(retailerID).Len(),
		"a failed write must leave the draft intact for a retry")
}
