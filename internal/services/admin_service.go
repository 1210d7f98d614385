package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
	"github.com/mindwellhq/mindwell-backend/internal/auth"
	"github.com/mindwellhq/mindwell-backend/internal/models"
	repo "github.com/mindwellhq/mindwell-backend/internal/repository"
)

// AdminService registers and authenticates staff accounts and manages
// their profiles. Body validation (name/email/password rules) happens at
// the boundary before these methods run.
type AdminService struct {
	admins repo.Admins
	tm     *auth.TokenManager
	audit  *AuditRecorder
}

func NewAdminService(admins repo.Admins, tm *auth.TokenManager, audit *AuditRecorder) *AdminService {
	return &AdminService{admins: admins, tm: tm, audit: audit}
}

func (s *AdminService) Register(ctx context.Context, name, email, password string) (Session, error) {
	email = strings.TrimSpace(email)

	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return Session{}, apperr.ErrConflict
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	a, err := s.admins.Create(ctx, strings.TrimSpace(name), email, hash)
	if err != nil {
		return Session{}, err
	}

	token, err := s.tm.Issue(a.ID, models.RoleAdmin)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Account: a.Public()}, nil
}

func (s *AdminService) Login(ctx context.Context, email, password string) (Session, error) {
	a, err := s.admins.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Session{}, apperr.ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := auth.VerifyPassword(password, a.PasswordHash); err != nil {
		return Session{}, apperr.ErrInvalidCredentials
	}

	token, err := s.tm.Issue(a.ID, models.RoleAdmin)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Account: a.Public()}, nil
}

// Profile returns the admin's own view; ErrNotFound if the account was
// removed out of band after the token was issued.
func (s *AdminService) Profile(ctx context.Context, adminID string) (models.Admin, error) {
	return s.admins.GetByID(ctx, adminID)
}

// UpdateProfile changes name and/or email. Nil fields keep prior values.
func (s *AdminService) UpdateProfile(ctx context.Context, adminID string, name, email *string) (models.Admin, error) {
	a, err := s.admins.UpdateProfile(ctx, adminID, name, email)
	if err != nil {
		return models.Admin{}, err
	}
	s.audit.Record("admin", a.ID, adminID, "profile_update", nil)
	return a, nil
}
