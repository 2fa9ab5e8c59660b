package usecase

import (
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

// DashboardUseCase admin dashboard cards: orders awaiting packing, orders
// awaiting dispatch, and revenue from delivered orders.
type DashboardUseCase struct {
	orders repository.OrderRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(orders repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders}
}

// Stats aggregates over the full order list.
func (uc *DashboardUseCase) Stats() (*dto.StatsResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	var stats dto.StatsResponse
	for _, o := range list {
		switch o.Status {
		case entity.StatusPending:
			stats.PendingCount++
		case entity.StatusPacked:
			stats.PackedCount++
		case entity.StatusDelivered:
			stats.DeliveredRevenue += o.Total
		}
	}
	return &stats, nil
}
