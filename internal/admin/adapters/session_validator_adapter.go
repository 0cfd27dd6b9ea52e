package adapters

import (
	"maricheck/internal/admin/session"
	auth "maricheck/pkg/platform/middleware/auth"
)

// SessionValidatorAdapter adapts the session manager to the auth middleware's
// SessionValidator interface.
type SessionValidatorAdapter struct {
	manager *session.Manager
}

// NewSessionValidatorAdapter creates a new adapter wrapping a session manager.
func NewSessionValidatorAdapter(manager *session.Manager) *SessionValidatorAdapter {
	return &SessionValidatorAdapter{manager: manager}
}

// ValidateSession returns the admin carried by a valid session token.
func (a *SessionValidatorAdapter) ValidateSession(token string) (*auth.SessionClaims, error) {
	claims, err := a.manager.Validate(token)
	if err != nil {
		return nil, err
	}
	adminID, err := claims.AdminID()
	if err != nil {
		return nil, err
	}
	return &auth.SessionClaims{AdminID: adminID, Username: claims.Username}, nil
}
