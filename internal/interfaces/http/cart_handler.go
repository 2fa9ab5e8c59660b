package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpmotors/spares-api/internal/application/checkout"
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
)

// CartHandler handles the caller's draft order (protected).
type CartHandler struct {
	uc *checkout.UseCase
}

// NewCartHandler builds the handler.
func NewCartHandler(uc *checkout.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View returns the current cart with its invoice summary.
// GET /api/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View(GetUserID(c)))
}

// AddItem godoc
// @Summary      Add a part to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddCartItemRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddItem(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id is required"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "part not found"})
		}
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "account no longer exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateItem replaces a line's quantity. Quantities below 1 and unknown
// products are no-ops, mirroring the cart semantics.
// PUT /api/cart/items/:productId
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	return c.JSON(h.uc.SetQuantity(GetUserID(c), c.Params("productId"), in.Quantity))
}

// RemoveItem drops a line from the cart.
// DELETE /api/cart/items/:productId
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	return c.JSON(h.uc.RemoveItem(GetUserID(c), c.Params("productId")))
}

// Checkout godoc
// @Summary      Submit the cart as a Pending order
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.Context(), GetUserID(c))
	if err != nil {
		if err == domain.ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "cart is empty"})
		}
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "account no longer exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
