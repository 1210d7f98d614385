package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/models"
	"github.com/mindwellhq/mindwell-backend/internal/testutil"
)

func newResourceSvc() (*ResourceService, *testutil.FakeResources) {
	repo := testutil.NewFakeResources()
	return NewResourceService(repo, nil), repo
}

func articleInput() ResourceInput {
	return ResourceInput{
		Title:       "T",
		Description: "D",
		Content:     "C",
		Type:        models.TypeArticle,
		Author:      "A",
	}
}

func TestResourceService_Create(t *testing.T) {
	svc, _ := newResourceSvc()

	res, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", res.CreatedBy)
	assert.False(t, res.IsPublished)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestResourceService_Create_VideoWithoutMediaURL(t *testing.T) {
	svc, _ := newResourceSvc()

	in := articleInput()
	in.Type = models.TypeVideo
	_, err := svc.Create(context.Background(), in, "admin-1")
	require.Error(t, err)

	in.MediaURL = "https://cdn.example.com/v.mp4"
	res, err := svc.Create(context.Background(), in, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, models.TypeVideo, res.Type)
}

func TestResourceService_GetByID_NotFound(t *testing.T) {
	svc, _ := newResourceSvc()

	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestResourceService_Update_Partial(t *testing.T) {
	svc, _ := newResourceSvc()

	created, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)

	title := "New title"
	updated, err := svc.Update(context.Background(), created.ID, models.ResourcePatch{Title: &title}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
}

func TestResourceService_Update_EmptyPatchBumpsUpdatedAt(t *testing.T) {
	svc, _ := newResourceSvc()

	created, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(context.Background(), created.ID, models.ResourcePatch{}, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestResourceService_Update_CannotInvalidate(t *testing.T) {
	svc, _ := newResourceSvc()

	created, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)

	// switching to video without a media url must fail validation
	video := models.TypeVideo
	_, err = svc.Update(context.Background(), created.ID, models.ResourcePatch{Type: &video}, "admin-1")
	require.Error(t, err)
}

func TestResourceService_Delete(t *testing.T) {
	svc, _ := newResourceSvc()

	created, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, "admin-1"))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID, "admin-1"), apperr.ErrNotFound)
}

func TestResourceService_ListByType_PublishedOnly(t *testing.T) {
	svc, _ := newResourceSvc()

	draft, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)

	list, err := svc.ListByType(context.Background(), models.TypeArticle)
	require.NoError(t, err)
	assert.Empty(t, list)

	published := true
	_, err = svc.Update(context.Background(), draft.ID, models.ResourcePatch{IsPublished: &published}, "admin-1")
	require.NoError(t, err)

	list, err = svc.ListByType(context.Background(), models.TypeArticle)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, draft.ID, list[0].ID)
}

func TestResourceService_List_Filters(t *testing.T) {
	svc, _ := newResourceSvc()

	_, err := svc.Create(context.Background(), articleInput(), "admin-1")
	require.NoError(t, err)

	in := articleInput()
	in.Type = models.TypePodcast
	in.MediaURL = "https://cdn.example.com/p.mp3"
	_, err = svc.Create(context.Background(), in, "admin-1")
	require.NoError(t, err)

	all, err := svc.List(context.Background(), models.ResourceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	podcast := models.TypePodcast
	byType, err := svc.List(context.Background(), models.ResourceFilter{Type: &podcast})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, models.TypePodcast, byType[0].Type)

	unpublished := false
	drafts, err := svc.List(context.Background(), models.ResourceFilter{IsPublished: &unpublished})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
}
