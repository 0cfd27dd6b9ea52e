package handler

import "time"

// SessionResponse is returned on login. Token is also set as an HttpOnly
// cookie; API clients may send it as a bearer token instead.
type SessionResponse struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the administrator behind the current session.
type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
