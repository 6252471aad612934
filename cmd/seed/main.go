// seed creates the database schema and loads a minimal working data set: the
// organization profile, an admin account, and one sample invoice.
//
// Usage: go run ./cmd/seed
// Reads the same configuration as the API (env vars / .env).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tryidoltech/Tryidol-Inv/internal/application/auth"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
	"github.com/tryidoltech/Tryidol-Inv/internal/infrastructure/postgres"
	"github.com/tryidoltech/Tryidol-Inv/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	inv_id TEXT NOT NULL,
	customer_name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	contact TEXT NOT NULL DEFAULT '',
	issue_date TIMESTAMPTZ NOT NULL,
	discount_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS invoice_items (
	id UUID PRIMARY KEY,
	invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	product_name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	amount NUMERIC(12,2) NOT NULL,
	quantity INT NOT NULL,
	position INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS org_profile (
	id UUID PRIMARY KEY,
	org_name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	tax_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("create schema: %v", err)
	}
	fmt.Println("schema ready")

	profileRepo := postgres.NewProfileRepository(pool)
	existing, err := profileRepo.Get()
	if err != nil {
		fail("read profile: %v", err)
	}
	if existing == nil {
		err = profileRepo.Upsert(&entity.Profile{
			ID:         uuid.New().String(),
			OrgName:    "Tryidol Technologies",
			Email:      "contact@tryidoltech.com",
			Phone:      "+91 90000 00000",
			Address:    "Nagpur, Maharashtra, India",
			TaxPercent: decimal.NewFromInt(18),
			UpdatedAt:  time.Now(),
		})
		if err != nil {
			fail("seed profile: %v", err)
		}
		fmt.Println("organization profile created")
	}

	userRepo := postgres.NewUserRepository(pool)
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@tryidoltech.com")
	admin, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		fail("read admin: %v", err)
	}
	if admin == nil {
		password := envOr("SEED_ADMIN_PASSWORD", "changeme")
		u, err := auth.NewUser("Administrator", adminEmail, password, entity.RoleAdmin)
		if err != nil {
			fail("build admin user: %v", err)
		}
		if err := userRepo.Create(u); err != nil {
			fail("seed admin: %v", err)
		}
		fmt.Printf("admin account created: %s\n", adminEmail)
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	invoices, err := invoiceRepo.List(1, 0)
	if err != nil {
		fail("list invoices: %v", err)
	}
	if len(invoices) == 0 {
		now := time.Now()
		invID := uuid.New().String()
		err = invoiceRepo.Create(&entity.Invoice{
			ID:              invID,
			InvID:           "INV-SAMPLE-001",
			CustomerName:    "Sample Customer",
			Email:           "customer@example.com",
			Contact:         "+91 98765 43210",
			IssueDate:       now,
			DiscountPercent: decimal.NewFromInt(10),
			CreatedAt:       now,
			UpdatedAt:       now,
			Items: []entity.InvoiceItem{
				{ID: uuid.New().String(), InvoiceID: invID, ProductName: "Website Development", Description: "Landing page, Contact form, Deployment", Amount: decimal.NewFromInt(15000), Quantity: 1},
				{ID: uuid.New().String(), InvoiceID: invID, ProductName: "Logo Design", Description: "3 concepts, Source files", Amount: decimal.NewFromInt(2500), Quantity: 2},
			},
		})
		if err != nil {
			fail("seed invoice: %v", err)
		}
		fmt.Println("sample invoice created")
	}

	fmt.Println("done")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
