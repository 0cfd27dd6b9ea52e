package models

import (
	"strings"
	"time"
)

// EndpointClass groups public endpoints that share a request budget.
type EndpointClass string

const (
	// ClassRegister covers POST /register/crew and /register/staff.
	ClassRegister EndpointClass = "register"
	// ClassTrack covers the public status lookup.
	ClassTrack EndpointClass = "track"
	// ClassProfile covers the private profile page and its uploads.
	ClassProfile EndpointClass = "profile"
	// ClassLogin covers POST /admin/login.
	ClassLogin EndpointClass = "login"
)

func (c EndpointClass) IsValid() bool {
	switch c {
	case ClassRegister, ClassTrack, ClassProfile, ClassLogin:
		return true
	}
	return false
}

// Limit is a fixed-window budget.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Disabled reports whether the limit lets everything through.
func (l Limit) Disabled() bool {
	return l.Requests <= 0 || l.Window <= 0
}

// Result is the outcome of one rate limit check.
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
	// Degraded is set when the check ran against the in-memory fallback.
	Degraded bool `json:"-"`
}

// NewResult derives the client-facing fields from a window count.
func NewResult(count int, limit Limit, resetAt, now time.Time) *Result {
	r := &Result{
		Allowed:   count <= limit.Requests,
		Limit:     limit.Requests,
		Remaining: max(limit.Requests-count, 0),
		ResetAt:   resetAt,
	}
	if !r.Allowed {
		r.RetryAfter = max(int(resetAt.Sub(now).Round(time.Second).Seconds()), 1)
	}
	return r
}

// NewKey builds the counter key for a client in an endpoint class.
func NewKey(class EndpointClass, clientIP string) string {
	return "ratelimit:" + string(class) + ":" + SanitizeKeySegment(clientIP)
}

// SanitizeKeySegment escapes the key delimiter so an identifier cannot
// address a neighbouring counter. IPv6 colons become underscores.
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// ExceededResponse is the 429 body.
type ExceededResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	RetryAfter       int    `json:"retry_after"`
}
