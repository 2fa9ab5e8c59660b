package auth_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpmotors/spares-api/internal/application/auth"
	"github.com/jpmotors/spares-api/internal/application/dto"
	"github.com/jpmotors/spares-api/internal/domain"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/infrastructure/memory"
)

// fakeUserRepo keeps users in maps keyed by id and username.
type fakeUserRepo struct {
	byID       map[string]*entity.User
	byUsername map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{
		byID:       make(map[string]*entity.User),
		byUsername: make(map[string]*entity.User),
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byUsername[u.Username] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byID[u.ID] = u
	f.byUsername[u.Username] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.byID[id], nil }
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.byUsername[username], nil
}
func (f *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(string) error           { return nil }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func testJWTCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "spares-api-test"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminGetsAdminView(t *testing.T) {
	users := newFakeUserRepo(&entity.User{
		ID: "u-admin", Username: "admin", Name: "JP Motors Admin",
		Role: entity.RoleAdmin, PasswordHash: mustHash(t, "secret-pass"),
	})
	uc := auth.NewUseCase(users, memory.NewCartStore(), testJWTCfg())

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "secret-pass"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, string(domain.ViewAdmin), out.View)
	assert.Equal(t, "admin", out.User.Username)
}

func TestLogin_RetailerGetsCatalogView(t *testing.T) {
	users := newFakeUserRepo(&entity.User{
		ID: "u-1", Username: "sharma_spares", Role: entity.RoleRetailer,
		PasswordHash: mustHash(t, "secret-pass"),
	})
	uc := auth.NewUseCase(users, memory.NewCartStore(), testJWTCfg())

	out, err := uc.Login(dto.LoginRequest{Username: "sharma_spares", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ViewCatalog), out.View)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeUserRepo(&entity.User{
		ID: "u-1", Username: "sharma_spares", Role: entity.RoleRetailer,
		PasswordHash: mustHash(t, "secret-pass"),
	})
	uc := auth.NewUseCase(users, memory.NewCartStore(), testJWTCfg())

	_, err := uc.Login(dto.LoginRequest{Username: "sharma_spares", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUsernameLooksLikeWrongPassword(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), memory.NewCartStore(), testJWTCfg())

	// Same error as a bad password: no username probing.
	_, err := uc.Login(dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_DropsTheDraftOrder(t *testing.T) {
	carts := memory.NewCartStore()
	uc := auth.NewUseCase(newFakeUserRepo(), carts, testJWTCfg())

	carts.Get("u-1").Add("p1", "Clutch Plate", "JP-CL-1001", 2, 450)
	require.Equal(t, 1, carts.Get("u-1").Len())

	uc.Logout("u-1")
	assert.Equal(t, 0, carts.Get("u-1").Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterRetailer
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterRetailer_HashesPasswordAndAssignsRole(t *testing.T) {
	users := newFakeUserRepo()
	uc := auth.NewUseCase(users, memory.NewCartStore(), testJWTCfg())

	out, err := uc.RegisterRetailer(dto.CreateRetailerRequest{
		Name: "Kumar Motors", Username: "kumar_motors",
		Password: "kumar@2024!", Discount: decimal.NewFromFloat(12.5),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleRetailer, out.Role)
	assert.True(t, decimal.NewFromFloat(12.5).Equal(out.Discount))

	stored := users.byUsername["kumar_motors"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "kumar@2024!", stored.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("kumar@2024!")))
}

func TestRegisterRetailer_DuplicateUsername(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u-1", Username: "kumar_motors"})
	uc := auth.NewUseCase(users, memory.NewCartStore(), testJWTCfg())

	_, err := uc.RegisterRetailer(dto.CreateRetailerRequest{
		Name: "Someone Else", Username: "kumar_motors", Password: "password1",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterRetailer_DiscountOutOfRange(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), memory.NewCartStore(), testJWTCfg())

	_, err := uc.RegisterRetailer(dto.CreateRetailerRequest{
		Name: "Bad Tier", Username: "bad_tier", Password: "password1",
		Discount: decimal.NewFromInt(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
