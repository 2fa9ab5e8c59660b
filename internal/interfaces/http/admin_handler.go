package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpmotors/spares-api/internal/application/auth"
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/application/usecase"
	"github.com/jpmotors/spares-api/internal/domain"
)

// AdminHandler the admin console: dashboard stats and retailer management.
// Every route is behind RequireRole(entity.RoleAdmin).
type AdminHandler struct {
	dashboard *usecase.DashboardUseCase
	users     *usecase.UserUseCase
	auth      *auth.UseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(dashboard *usecase.DashboardUseCase, users *usecase.UserUseCase, authUC *auth.UseCase) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, users: users, auth: authUC}
}

// Stats returns the dashboard cards: pending count, packed count, delivered
// revenue.
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.dashboard.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListRetailers returns every retailer account.
// GET /api/admin/users
func (h *AdminHandler) ListRetailers(c *fiber.Ctx) error {
	out, err := h.users.ListRetailers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateRetailer godoc
// @Summary      Provision a retailer account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRetailerRequest  true  "name, username, password, discount"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateRetailer(c *fiber.Ctx) error {
	var in dto.CreateRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Username == "" || in.Password == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, username and password are required"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password must be at least 8 characters"})
	}
	out, err := h.auth.RegisterRetailer(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "discount must be between 0 and 100"})
		}
		if err == domain.ErrUsernameTaken {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_TAKEN", Message: "username is already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteRetailer removes a retailer account.
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteRetailer(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	if err := h.users.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "user not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
