package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/models"
)

type resourcesRepo struct{ pool *pgxpool.Pool }

const resourceCols = `id, title, description, content, type, media_url, thumbnail, author, tags, created_by, is_published, created_at, updated_at`

func scanResource(row pgx.Row) (models.Resource, error) {
	var r models.Resource
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Content, &r.Type, &r.MediaURL,
		&r.Thumbnail, &r.Author, &r.Tags, &r.CreatedBy, &r.IsPublished, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func collectResources(rows pgx.Rows) ([]models.Resource, error) {
	defer rows.Close()
	out := []models.Resource{}
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (r *resourcesRepo) Create(ctx context.Context, res models.Resource) (models.Resource, error) {
	id := uuid.NewString()
	if res.Tags == nil {
		res.Tags = []string{}
	}
	created, err := scanResource(r.pool.QueryRow(ctx,
		`INSERT INTO resources(id, title, description, content, type, media_url, thumbnail, author, tags, created_by, is_published)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING `+resourceCols,
		id, res.Title, res.Description, res.Content, res.Type, res.MediaURL,
		res.Thumbnail, res.Author, res.Tags, res.CreatedBy, res.IsPublished))
	if err != nil {
		return models.Resource{}, fmt.Errorf("failed to create resource: %w", err)
	}
	return created, nil
}

func (r *resourcesRepo) GetByID(ctx context.Context, id string) (models.Resource, error) {
	res, err := scanResource(r.pool.QueryRow(ctx,
		`SELECT `+resourceCols+` FROM resources WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Resource{}, apperr.ErrNotFound
		}
		return models.Resource{}, fmt.Errorf("failed to get resource: %w", err)
	}
	return res, nil
}

// List returns the full matching set, newest first. No pagination.
func (r *resourcesRepo) List(ctx context.Context, f models.ResourceFilter) ([]models.Resource, error) {
	var (
		where []string
		args  []any
	)
	if f.Type != nil {
		args = append(args, *f.Type)
		where = append(where, "type=$"+strconv.Itoa(len(args)))
	}
	if f.IsPublished != nil {
		args = append(args, *f.IsPublished)
		where = append(where, "is_published=$"+strconv.Itoa(len(args)))
	}

	q := `SELECT ` + resourceCols + ` FROM resources`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return collectResources(rows)
}

// Update persists the whole row: last write wins, no version check.
func (r *resourcesRepo) Update(ctx context.Context, res models.Resource) (models.Resource, error) {
	if res.Tags == nil {
		res.Tags = []string{}
	}
	updated, err := scanResource(r.pool.QueryRow(ctx,
		`UPDATE resources
		 SET title=$2, description=$3, content=$4, type=$5, media_url=$6, thumbnail=$7,
		     author=$8, tags=$9, is_published=$10, updated_at=now()
		 WHERE id=$1 RETURNING `+resourceCols,
		res.ID, res.Title, res.Description, res.Content, res.Type, res.MediaURL,
		res.Thumbnail, res.Author, res.Tags, res.IsPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Resource{}, apperr.ErrNotFound
		}
		return models.Resource{}, fmt.Errorf("failed to update resource: %w", err)
	}
	return updated, nil
}

func (r *resourcesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *resourcesRepo) ListPublishedByType(ctx context.Context, t models.ResourceType) ([]models.Resource, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resourceCols+` FROM resources
		 WHERE type=$1 AND is_published=true ORDER BY created_at DESC`, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources by type: %w", err)
	}
	return collectResources(rows)
}
