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

// AuthService registers and authenticates end-user accounts.
type AuthService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewAuthService(users repo.Users, tm *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tm: tm}
}

// Session is a freshly issued token plus the public account view.
type Session struct {
	Token   string
	Account models.PublicView
}

// Register creates a user account and issues a token. Duplicate emails
// fail with apperr.ErrConflict; the unique index backs the check, so a
// racing registration still produces exactly one record.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (Session, error) {
	email = strings.TrimSpace(email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return Session{}, apperr.ErrConflict
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return Session{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.users.Create(ctx, strings.TrimSpace(name), email, hash)
	if err != nil {
		return Session{}, err
	}

	token, err := s.tm.Issue(u.ID, models.RoleUser)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Account: u.Public()}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both return ErrInvalidCredentials so the caller cannot tell
// which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Session{}, apperr.ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return Session{}, apperr.ErrInvalidCredentials
	}

	token, err := s.tm.Issue(u.ID, models.RoleUser)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Account: u.Public()}, nil
}
