package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tryidoltech/Tryidol-Inv/internal/domain/entity"
	"github.com/tryidoltech/Tryidol-Inv/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo ProfileRepository implementation over PostgreSQL. The table
// holds at most one row.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository builds the profile persistence adapter.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Get returns the organization profile, (nil, nil) when not configured.
func (r *ProfileRepo) Get() (*entity.Profile, error) {
	query := `
		SELECT id, org_name, email, phone, address, tax_percent, updated_at
		FROM org_profile LIMIT 1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&p.ID, &p.OrgName, &p.Email, &p.Phone, &p.Address, &p.TaxPercent, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Upsert inserts or replaces the single profile row.
func (r *ProfileRepo) Upsert(profile *entity.Profile) error {
	query := `
		INSERT INTO org_profile (id, org_name, email, phone, address, tax_percent, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			org_name = EXCLUDED.org_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			tax_percent = EXCLUDED.tax_percent,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		profile.ID, profile.OrgName, profile.Email, profile.Phone, profile.Address,
		profile.TaxPercent, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
