package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/models"
)

type adminsRepo struct{ pool *pgxpool.Pool }

const adminCols = `id, name, email, password_hash, role, created_at, updated_at`

func scanAdmin(row pgx.Row) (models.Admin, error) {
	var a models.Admin
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *adminsRepo) Create(ctx context.Context, name, email, hash string) (models.Admin, error) {
	id := uuid.NewString()
	a, err := scanAdmin(r.pool.QueryRow(ctx,
		`INSERT INTO admins(id, name, email, password_hash) VALUES($1,$2,$3,$4)
		 RETURNING `+adminCols, id, name, email, hash))
	if err != nil {
		if isConflict(err) {
			return models.Admin{}, apperr.ErrConflict
		}
		return models.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}
	return a, nil
}

func (r *adminsRepo) GetByID(ctx context.Context, id string) (models.Admin, error) {
	a, err := scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminCols+` FROM admins WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, apperr.ErrNotFound
		}
		return models.Admin{}, fmt.Errorf("failed to get admin by id: %w", err)
	}
	return a, nil
}

func (r *adminsRepo) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	a, err := scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminCols+` FROM admins WHERE email=$1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, apperr.ErrNotFound
		}
		return models.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return a, nil
}

// UpdateProfile changes name and/or email; nil fields keep prior values.
// The role column is never touched.
func (r *adminsRepo) UpdateProfile(ctx context.Context, id string, name, email *string) (models.Admin, error) {
	a, err := scanAdmin(r.pool.QueryRow(ctx,
		`UPDATE admins SET name=COALESCE($2, name), email=COALESCE($3, email), updated_at=now()
		 WHERE id=$1 RETURNING `+adminCols, id, name, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, apperr.ErrNotFound
		}
		if isConflict(err) {
			return models.Admin{}, apperr.ErrConflict
		}
		return models.Admin{}, fmt.Errorf("failed to update admin profile: %w", err)
	}
	return a, nil
}
