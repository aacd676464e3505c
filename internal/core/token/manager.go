// Package token issues and validates the HS256 bearer tokens used for
// authentication. Tokens are self-contained (subject + expiry) and are
// never stored server-side: there is no revocation list, so an issued
// token stays valid until its expiry even after a password change.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/internal/domain"
)

type claims struct {
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs a token for subject expiring at now + the configured
// expiry.
func (m *Manager) Issue(subject string, now time.Time) (string, error) {
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(m.secret)
}

// Validate checks signature and expiry and returns the subject.
// Expired tokens come back as domain.ErrExpiredToken; anything
// malformed, tampered or signed with an unexpected algorithm as
// domain.ErrInvalidToken.
func (m *Manager) Validate(tokenString string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrExpiredToken
		}
		return "", domain.ErrInvalidToken
	}

	c, ok := t.Claims.(*claims)
	if !ok || !t.Valid || c.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return c.Subject, nil
}
