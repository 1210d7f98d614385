package services

import (
	"context"

	"github.com/mindwellhq/mindwell-backend/internal/metrics"
	"github.com/mindwellhq/mindwell-backend/internal/models"
	repo "github.com/mindwellhq/mindwell-backend/internal/repository"
)

// ResourceService is CRUD over the content catalog. It does not check
// the caller's role: the gateway verifies the token and passes a trusted
// admin id in — the capability contract ends there.
type ResourceService struct {
	resources repo.Resources
	audit     *AuditRecorder
}

func NewResourceService(resources repo.Resources, audit *AuditRecorder) *ResourceService {
	return &ResourceService{resources: resources, audit: audit}
}

// ResourceInput is the creation payload. isPublished always starts false.
type ResourceInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Content     string              `json:"content"`
	Type        models.ResourceType `json:"type"`
	MediaURL    string              `json:"mediaUrl"`
	Thumbnail   string              `json:"thumbnail"`
	Author      string              `json:"author"`
	Tags        []string            `json:"tags"`
}

func (s *ResourceService) Create(ctx context.Context, in ResourceInput, creatorAdminID string) (models.Resource, error) {
	res := models.Resource{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Type:        in.Type,
		MediaURL:    in.MediaURL,
		Thumbnail:   in.Thumbnail,
		Author:      in.Author,
		Tags:        in.Tags,
		CreatedBy:   creatorAdminID,
	}
	if err := res.Validate(); err != nil {
		return models.Resource{}, err
	}

	created, err := s.resources.Create(ctx, res)
	if err != nil {
		return models.Resource{}, err
	}
	metrics.ResourceWritesTotal.WithLabelValues("create").Inc()
	s.audit.Record("resource", created.ID, creatorAdminID, "create", map[string]any{"type": string(created.Type)})
	return created, nil
}

func (s *ResourceService) List(ctx context.Context, f models.ResourceFilter) ([]models.Resource, error) {
	return s.resources.List(ctx, f)
}

func (s *ResourceService) GetByID(ctx context.Context, id string) (models.Resource, error) {
	return s.resources.GetByID(ctx, id)
}

// Update applies the set fields of the patch onto the stored resource
// and re-validates the result. An empty patch still refreshes updatedAt.
func (s *ResourceService) Update(ctx context.Context, id string, patch models.ResourcePatch, actorAdminID string) (models.Resource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return models.Resource{}, err
	}

	patch.Apply(&res)
	if err := res.Validate(); err != nil {
		return models.Resource{}, err
	}

	updated, err := s.resources.Update(ctx, res)
	if err != nil {
		return models.Resource{}, err
	}
	metrics.ResourceWritesTotal.WithLabelValues("update").Inc()
	s.audit.Record("resource", updated.ID, actorAdminID, "update", nil)
	return updated, nil
}

func (s *ResourceService) Delete(ctx context.Context, id string, actorAdminID string) error {
	if err := s.resources.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ResourceWritesTotal.WithLabelValues("delete").Inc()
	s.audit.Record("resource", id, actorAdminID, "delete", nil)
	return nil
}

// ListByType is the public-facing variant: published resources only.
func (s *ResourceService) ListByType(ctx context.Context, t models.ResourceType) ([]models.Resource, error) {
	return s.resources.ListPublishedByType(ctx, t)
}
