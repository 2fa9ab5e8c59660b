package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmotors/spares-api/internal/application/usecase"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/pricing"
)

// stubOrderRepo serves a fixed order set and records status updates.
type stubOrderRepo struct {
	orders  map[string]*entity.Order
	updated map[string]entity.Status
}

func newStubOrderRepo(orders ...*entity.Order) *stubOrderRepo {
	m := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &stubOrderRepo{orders: m, updated: make(map[string]entity.Status)}
}

func (s *stubOrderRepo) Create(*entity.Order) error { return nil }
func (s *stubOrderRepo) GetByID(id string) (*entity.Order, error) {
	return s.orders[id], nil
}
func (s *stubOrderRepo) List() ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}
func (s *stubOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (s *stubOrderRepo) UpdateStatus(id string, status entity.Status) error {
	s.updated[id] = status
	return nil
}

// stubGenerator returns canned bytes instead of a real PDF.
type stubGenerator struct{}

func (stubGenerator) GenerateOrderPDF(_ context.Context, _ *entity.Order, _ pricing.Breakdown) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func fixtureOrders() (*entity.Order, *entity.Order) {
	now := time.Now()
	a := &entity.Order{
		ID: "order-a", UserID: "retailer-1", CustomerName: "Sharma Auto Spares",
		Date: now, Status: entity.StatusPending, Total: 1084,
		Lines: []entity.OrderLine{{ID: "l1", OrderID: "order-a", ProductID: "p1", Name: "Clutch Plate", Quantity: 2, UnitPrice: 450}},
	}
	b := &entity.Order{
		ID: "order-b", UserID: "retailer-2", CustomerName: "Kumar Motors",
		Date: now, Status: entity.StatusDelivered, Total: 2500,
	}
	return a, b
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibility
// ──────────────────────────────────────────────────────────────────────────────

func TestListFor_AdminSeesEverything(t *testing.T) {
	a, b := fixtureOrders()
	uc := usecase.NewOrderUseCase(newStubOrderRepo(a, b), stubGenerator{})

	out, err := uc.ListFor("any-admin", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestListFor_RetailerSeesOnlyOwnOrders(t *testing.T) {
	a, b := fixtureOrders()
	uc := usecase.NewOrderUseCase(newStubOrderRepo(a, b), stubGenerator{})

	out, err := uc.ListFor("retailer-1", entity.RoleRetailer)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "order-a", out.Items[0].ID)
}

func TestGetFor_RetailerBlockedOnForeignOrder(t *testing.T) {
	a, b := fixtureOrders()
	uc := usecase.NewOrderUseCase(newStubOrderRepo(a, b), stubGenerator{})

	_, err := uc.GetFor("order-b", "retailer-1", entity.RoleRetailer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Status workflow
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvance_PendingBecomesPacked(t *testing.T) {
	a, _ := fixtureOrders()
	repo := newStubOrderRepo(a)
	uc := usecase.NewOrderUseCase(repo, stubGenerator{})

	out, err := uc.Advance("order-a")
	require.NoError(t, err)
	assert.Equal(t, "Packed", out.Status)
	assert.Equal(t, entity.StatusPacked, repo.updated["order-a"])
}

func TestAdvance_DeliveredIsTerminal(t *testing.T) {
	_, b := fixtureOrders()
	repo := newStubOrderRepo(b)
	uc := usecase.NewOrderUseCase(repo, stubGenerator{})

	out, err := uc.Advance("order-b")
	require.NoError(t, err)
	assert.Equal(t, "Delivered", out.Status, "a terminal order stays put")
	assert.Empty(t, repo.updated, "no status write must happen")
}

func TestAdvance_UnknownOrderReturnsNotFound(t *testing.T) {
	uc := usecase.NewOrderUseCase(newStubOrderRepo(), stubGenerator{})

	_, err := uc.Advance("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invoice PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadInvoicePDF_EnforcesVisibility(t *testing.T) {
	a, b := fixtureOrders()
	uc := usecase.NewOrderUseCase(newStubOrderRepo(a, b), stubGenerator{})

	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), "order-a", "retailer-1", entity.RoleRetailer)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "order_order-a.pdf", filename)

	_, _, err = uc.DownloadInvoicePDF(context.Background(), "order-b", "retailer-1", entity.RoleRetailer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
