package models

import (
	"strings"
	"time"

	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
)

// DefaultUsername is the account seeded on an empty admins table.
const DefaultUsername = "admin"

// Admin is a back-office account allowed to review applicants.
type Admin struct {
	ID           id.AdminID `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NormalizeUsername trims and lowercases a login name.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LoginRequest is the body of POST /admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Username = NormalizeUsername(r.Username)
	if r.Username == "" || r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "username and password are required")
	}
	if len(r.Username) > 64 {
		return dErrors.New(dErrors.CodeValidation, "username must be at most 64 characters")
	}
	return nil
}

// Session is an issued admin session.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Admin     *Admin
}
