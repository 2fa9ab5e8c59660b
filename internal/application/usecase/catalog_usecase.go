package usecase

import (
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/catalog"
	"github.com/jpmotors/spares-api/internal/domain/pricing"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

// CatalogUseCase serves the filtered product catalog, priced per caller.
type CatalogUseCase struct {
	products repository.ProductRepository
	users    repository.UserRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(products repository.ProductRepository, users repository.UserRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, users: users}
}

// List returns the products matching searchTerm and brand, each carrying the
// caller's unit price. The discount tier is applied at display time; the
// locked-in cart price is taken separately, at add time.
func (uc *CatalogUseCase) List(userID, searchTerm, brand string) (*dto.ProductListResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	all, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	filtered := catalog.Filter(all, searchTerm, brand)
	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		yourPrice := pricing.UnitPrice(p.Price, user.Role, user.Discount)
		items = append(items, dto.ProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			PartNumber: p.PartNumber,
			Category:   p.Category,
			Brand:      p.Brand,
			Price:      p.Price,
			YourPrice:  yourPrice,
			Savings:    p.Price - yourPrice,
			Stock:      p.Stock,
		})
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Brands returns the brand dropdown values across the whole catalog.
func (uc *CatalogUseCase) Brands() (*dto.BrandListResponse, error) {
	all, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return &dto.BrandListResponse{Brands: catalog.Brands(all)}, nil
}
