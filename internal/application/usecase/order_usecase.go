package usecase

import (
	"context"
	"fmt"

	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/pricing"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

// OrderPDFGenerator renders one order as a printable invoice.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, breakdown pricing.Breakdown) ([]byte, error)
}

// OrderUseCase order history and the staff-driven status workflow.
type OrderUseCase struct {
	orders    repository.OrderRepository
	generator OrderPDFGenerator
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(orders repository.OrderRepository, generator OrderPDFGenerator) *OrderUseCase {
	return &OrderUseCase{orders: orders, generator: generator}
}

// ListFor returns order history for the caller. Admins see every order,
// retailers only their own. The filter runs on every fetch, never cached.
func (uc *OrderUseCase) ListFor(userID, role string) (*dto.OrderListResponse, error) {
	var (
		list []*entity.Order
		err  error
	)
	if role == entity.RoleAdmin {
		list, err = uc.orders.List()
	} else {
		list, err = uc.orders.ListByUser(userID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// GetFor fetches one order, enforcing the same visibility rule: a retailer
// may only read an order they own.
func (uc *OrderUseCase) GetFor(id, userID, role string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleAdmin && order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// Advance moves an order to its next status: Pending -> Packed ->
// Delivered. The UI only offers the valid next action, but the transition is
// still guarded here: a terminal or unknown status is a no-op that returns
// the order unchanged.
func (uc *OrderUseCase) Advance(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	next, ok := order.Status.Next()
	if !ok {
		return toOrderResponse(order), nil
	}
	if err := uc.orders.UpdateStatus(order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next
	return toOrderResponse(order), nil
}

// DownloadInvoicePDF loads the order (with visibility enforced), recomputes
// the charge breakdown from its lines, and renders the PDF.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound if the order does not exist.
//   - domain.ErrForbidden if a retailer requests someone else's order.
func (uc *OrderUseCase) DownloadInvoicePDF(
	ctx context.Context,
	id, userID, role string,
) (pdfBytes []byte, filename string, err error) {
	order, err := uc.GetFor(id, userID, role)
	if err != nil {
		return nil, "", err
	}

	lines := make([]pricing.Line, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, pricing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, order, pricing.Compute(lines))
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generation failed: %w", err)
	}
	return pdfBytes, fmt.Sprintf("order_%s.pdf", order.ID), nil
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
