package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mindwellhq/mindwell-backend/internal/apperr"
)

// Claims carries the authenticated subject and its role.
type Claims struct {
	SubjectID string `json:"uid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 tokens. Verification is
// self-contained: no store lookup, no revocation list — a token stays
// valid until its natural expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the subject id, role and expiry.
func (tm *TokenManager) Issue(subjectID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the claims.
// Any failure — malformed, bad signature, expired, wrong alg — maps to
// apperr.ErrInvalidToken.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
