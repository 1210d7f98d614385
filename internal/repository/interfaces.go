package repository

import (
	"context"

	"github.com/mindwellhq/mindwell-backend/internal/models"
)

// Users is the end-user credential store.
type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// Admins is the staff credential store.
type Admins interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.Admin, error)
	GetByID(ctx context.Context, id string) (models.Admin, error)
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
	UpdateProfile(ctx context.Context, id string, name, email *string) (models.Admin, error)
}

// Resources is the content catalog store.
type Resources interface {
	Create(ctx context.Context, r models.Resource) (models.Resource, error)
	GetByID(ctx context.Context, id string) (models.Resource, error)
	List(ctx context.Context, f models.ResourceFilter) ([]models.Resource, error)
	Update(ctx context.Context, r models.Resource) (models.Resource, error)
	Delete(ctx context.Context, id string) error
	ListPublishedByType(ctx context.Context, t models.ResourceType) ([]models.Resource, error)
}

// AuditLogs records admin mutations.
type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
