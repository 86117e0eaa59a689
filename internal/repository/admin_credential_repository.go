package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lawfirm/site-api/internal/domain"
)

type adminCredentialRepository struct {
	pool *pgxpool.Pool
}

// NewAdminCredentialRepository returns a Postgres-backed credential store.
func NewAdminCredentialRepository(pool *pgxpool.Pool) AdminCredentialRepository {
	return &adminCredentialRepository{pool: pool}
}

func (r *adminCredentialRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminCredential, error) {
	const query = `
        SELECT email, password_hash, created_at, updated_at
        FROM admin_credentials WHERE email=$1`

	var cred domain.AdminCredential
	err := r.pool.QueryRow(ctx, query, normalizeEmail(email)).Scan(
		&cred.Email,
		&cred.PasswordHash,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *adminCredentialRepository) Upsert(ctx context.Context, cred *domain.AdminCredential) error {
	const query = `
        INSERT INTO admin_credentials (email, password_hash)
        VALUES ($1, $2)
        ON CONFLICT (email) DO UPDATE SET password_hash=EXCLUDED.password_hash, updated_at=NOW()
        RETURNING created_at, updated_at`

	cred.Email = normalizeEmail(cred.Email)
	return r.pool.QueryRow(ctx, query, cred.Email, cred.PasswordHash).Scan(&cred.CreatedAt, &cred.UpdatedAt)
}
