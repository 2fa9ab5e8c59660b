package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/application/usecase"
	"github.com/jpmotors/spares-api/internal/domain"
)

// CatalogHandler serves the part catalog (protected).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List returns the catalog filtered by ?search= and ?brand=, priced for the
// caller's discount tier.
// GET /api/catalog/products
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), c.Query("search"), c.Query("brand"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "account no longer exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Brands returns the dropdown values: "All" first, then every distinct brand.
// GET /api/catalog/brands
func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	out, err := h.uc.Brands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
