package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/domain/repository"
	"github.com/jpmotors/spares-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// cartClearer is the minimal contract needed to drop a user's draft order on
// logout. Implemented by the in-memory cart store; the interface avoids a
// dependency on the checkout package.
type cartClearer interface {
	Clear(userID string)
}

// UseCase authentication: login, session restore, retailer registration.
type UseCase struct {
	users  repository.UserRepository
	carts  cartClearer
	jwtCfg JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, carts cartClearer, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, carts: carts, jwtCfg: jwtCfg}
}

// Login verifies username/password against the stored bcrypt hash, issues a
// JWT and returns it with the user and the role-derived default view.
// A mismatch is ErrInvalidCredentials and changes no state.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
		View:  string(domain.DefaultView(user.Role)),
	}, nil
}

// Session restores a session from a still-valid token: the default view is
// re-derived from the role stored in the token, credentials are not
// re-validated. The user record is loaded for display only.
func (uc *UseCase) Session(userID, role string) (*dto.SessionResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.SessionResponse{
		User: *toUserResponse(user),
		View: string(domain.DefaultView(role)),
	}, nil
}

// Logout discards the user's draft order. The token itself simply stops
// being presented by the client.
func (uc *UseCase) Logout(userID string) {
	uc.carts.Clear(userID)
}

// RegisterRetailer provisions a retailer account: hashes the password with
// bcrypt and persists. Returns ErrUsernameTaken when the username exists and
// ErrInvalidInput for a discount outside 0-100.
func (uc *UseCase) RegisterRetailer(in dto.CreateRetailerRequest) (*dto.UserResponse, error) {
	if in.Discount.IsNegative() || in.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.users.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleRetailer,
		Discount:     in.Discount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Discount:  u.Discount,
		CreatedAt: u.CreatedAt,
	}
}
