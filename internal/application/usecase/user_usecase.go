package usecase

import (
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/repository"
)

// UserUseCase admin-console retailer management. Account creation lives in
// the auth use case (it owns password hashing).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// ListRetailers returns all non-admin accounts.
func (uc *UserUseCase) ListRetailers() (*dto.UserListResponse, error) {
	list, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		if u.Role == entity.RoleAdmin {
			continue
		}
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Name:      u.Name,
			Role:      u.Role,
			Discount:  u.Discount,
			CreatedAt: u.CreatedAt,
		})
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Delete removes a retailer account.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.users.Delete(id)
}
