// seed creates the portal schema and loads demo accounts and the spare-part
// catalog. Brands are normalized here, at ingestion, so the filter endpoint
// never has to derive them per request.
//
// Usage: go run ./cmd/seed
// Reads the same configuration as the API (DATABASE_URL / DB_* env vars).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpmotors/spares-api/internal/domain/catalog"
	"github.com/jpmotors/spares-api/internal/domain/entity"
	"github.com/jpmotors/spares-api/internal/infrastructure/postgres"
	"github.com/jpmotors/spares-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL,
    role          TEXT NOT NULL,
    discount      NUMERIC(5,2) NOT NULL DEFAULT 0,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL,
    part_number TEXT NOT NULL,
    category    TEXT NOT NULL,
    brand       TEXT NOT NULL,
    price       BIGINT NOT NULL,
    stock       INTEGER NOT NULL DEFAULT 0,
    attributes  JSONB,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
    id      UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id),
    date    TIMESTAMPTZ NOT NULL,
    status  TEXT NOT NULL,
    total   BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    id         UUID PRIMARY KEY,
    order_id   UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
    product_id UUID NOT NULL,
    name       TEXT NOT NULL,
    quantity   BIGINT NOT NULL,
    unit_price BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
`

// seedPart is a raw catalog row before brand normalization.
type seedPart struct {
	name       string
	partNumber string
	category   string
	brand      string // may be empty: derived from attributes or category
	price      int64
	stock      int
	attributes string // raw JSON, may be empty
}

var demoParts = []seedPart{
	{"Clutch Plate Assembly", "JP-CL-1001", "Clutch", "bajaj", 1450, 40, ""},
	{"Brake Shoe Set", "JP-BR-2034", "Brakes", "", 380, 120, `{"brand": "tvs king", "side": "rear"}`},
	{"Head Gasket", "JP-EN-3310", "Engine", "", 260, 75, `{"Brand": "piaggio ape"}`},
	{"Gear Box Oil Seal", "JP-GB-4118", "Gear Box", "", 95, 200, `{"material": "rubber"}`},
	{"Front Shock Absorber", "JP-SU-5220", "Suspension", "Bajaj", 1120, 35, ""},
	{"Silencer Pipe", "JP-EX-6041", "Exhaust", "", 890, 25, `{"BRAND": "mahindra alfa"}`},
	{"Wiring Harness", "JP-EL-7503", "Electrical", "", 640, 60, ""},
	{"Piston Kit 145cc", "JP-EN-3322", "Engine", "bajaj re", 1680, 30, ""},
	{"Speedometer Cable", "JP-EL-7521", "Electrical", "", 150, 150, `{"length_cm": 180}`},
	{"Rear Axle Bearing", "JP-AX-8102", "Axle", "", 420, 90, `{"brand": "tvs king"}`},
}

type demoUser struct {
	username string
	password string
	name     string
	role     string
	discount decimal.Decimal
}

var demoUsers = []demoUser{
	{"admin", "admin@jpmotors", "JP Motors Admin", entity.RoleAdmin, decimal.Zero},
	{"sharma_spares", "sharma@2024!", "Sharma Auto Spares", entity.RoleRetailer, decimal.NewFromInt(10)},
	{"kumar_motors", "kumar@2024!", "Kumar Motors", entity.RoleRetailer, decimal.NewFromFloat(12.5)},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("PostgreSQL connection: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("create schema: %v", err)
	}

	users := postgres.NewUserRepository(pool)
	for _, du := range demoUsers {
		existing, err := users.GetByUsername(du.username)
		if err != nil {
			fail("check user %s: %v", du.username, err)
		}
		if existing != nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash password: %v", err)
		}
		now := time.Now()
		err = users.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     du.username,
			PasswordHash: string(hash),
			Name:         du.name,
			Role:         du.role,
			Discount:     du.discount,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			fail("insert user %s: %v", du.username, err)
		}
		fmt.Printf("user %s (%s) created\n", du.username, du.role)
	}

	products := postgres.NewProductRepository(pool)
	existing, err := products.List()
	if err != nil {
		fail("list products: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("catalog already has %d parts, skipping\n", len(existing))
		return
	}

	for _, sp := range demoParts {
		var attrs json.RawMessage
		if sp.attributes != "" {
			attrs = json.RawMessage(sp.attributes)
		}
		now := time.Now()
		err := products.Create(&entity.Product{
			ID:         uuid.New().String(),
			Name:       sp.name,
			PartNumber: sp.partNumber,
			Category:   sp.category,
			Brand:      catalog.DeriveBrand(sp.brand, attrs, sp.category),
			Price:      sp.price,
			Stock:      sp.stock,
			Attributes: attrs,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			fail("insert part %s: %v", sp.partNumber, err)
		}
	}
	fmt.Printf("catalog seeded with %d parts\n", len(demoParts))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
