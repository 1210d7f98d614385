package models

import (
	"errors"
	"strings"
	"time"
)

type ResourceType string

const (
	TypeArticle      ResourceType = "article"
	TypePodcast      ResourceType = "podcast"
	TypeVideo        ResourceType = "video"
	TypeExpertAdvice ResourceType = "expert-advice"
)

// ValidType reports whether t is one of the supported resource types.
func ValidType(t ResourceType) bool {
	switch t {
	case TypeArticle, TypePodcast, TypeVideo, TypeExpertAdvice:
		return true
	}
	return false
}

// Resource is a publishable content item in the library.
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Type        ResourceType `json:"type"`
	MediaURL    string       `json:"mediaUrl,omitempty"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Author      string       `json:"author"`
	Tags        []string     `json:"tags"`
	CreatedBy   string       `json:"createdBy"`
	IsPublished bool         `json:"isPublished"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Validate enforces the schema-level constraints: required text fields,
// a known type, and a media URL whenever the type is podcast or video.
func (r *Resource) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if strings.TrimSpace(r.Author) == "" {
		return errors.New("author is required")
	}
	if !ValidType(r.Type) {
		return errors.New("invalid resource type")
	}
	if (r.Type == TypePodcast || r.Type == TypeVideo) && strings.TrimSpace(r.MediaURL) == "" {
		return errors.New("mediaUrl is required for podcast and video resources")
	}
	return nil
}

// ResourcePatch is a partial update. A nil field means "leave unchanged";
// a non-nil field is applied even when it holds the zero value, so an
// explicit empty string clears and an explicit false unpublishes.
type ResourcePatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Content     *string       `json:"content"`
	Type        *ResourceType `json:"type"`
	MediaURL    *string       `json:"mediaUrl"`
	Thumbnail   *string       `json:"thumbnail"`
	Author      *string       `json:"author"`
	Tags        *[]string     `json:"tags"`
	IsPublished *bool         `json:"isPublished"`
}

// Apply copies the set fields of p onto r.
func (p ResourcePatch) Apply(r *Resource) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.MediaURL != nil {
		r.MediaURL = *p.MediaURL
	}
	if p.Thumbnail != nil {
		r.Thumbnail = *p.Thumbnail
	}
	if p.Author != nil {
		r.Author = *p.Author
	}
	if p.Tags != nil {
		r.Tags = *p.Tags
	}
	if p.IsPublished != nil {
		r.IsPublished = *p.IsPublished
	}
}

// ResourceFilter narrows List results. Nil fields match everything.
type ResourceFilter struct {
	Type        *ResourceType
	IsPublished *bool
}
