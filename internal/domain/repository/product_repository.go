package repository

import "github.com/jpmotors/spares-api/internal/domain/entity"

// ProductRepository is the persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
