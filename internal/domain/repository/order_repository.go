package repository

import "github.com/jpmotors/spares-api/internal/domain/entity"

// OrderRepository is the persistence port for Order. Create persists the
// header and all lines as one unit: inside a transaction either everything
// lands or nothing does. List results come pre-joined with their lines and
// the purchasing user's display name, newest first.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
	UpdateStatus(id string, status entity.Status) error
}
