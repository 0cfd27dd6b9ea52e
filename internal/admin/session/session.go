// Package session issues and validates signed admin session tokens.
package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"maricheck/internal/admin/models"
	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
)

const issuer = "maricheck"

// Claims are the JWT claims of an admin session. Subject carries the admin id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminID parses the subject claim.
func (c *Claims) AdminID() (id.AdminID, error) {
	n, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return id.AdminID(n), nil
}

// Manager signs sessions with HS256.
type Manager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(signingKey string, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL is how long issued sessions stay valid.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a session for the admin, valid for the manager's TTL from now.
func (m *Manager) Issue(admin *models.Admin, now time.Time) (*models.Session, error) {
	expiresAt := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return nil, err
	}
	return &models.Session{Token: signed, ExpiresAt: expiresAt, Admin: admin}, nil
}

// Validate verifies the signature, issuer and expiry of a session token.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return m.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	return claims, nil
}
