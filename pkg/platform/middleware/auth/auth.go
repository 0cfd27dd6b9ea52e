package auth

import (
	"log/slog"
	"net/http"
	"strings"

	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
	"maricheck/pkg/platform/httputil"
	"maricheck/pkg/requestcontext"
)

// SessionCookie carries the signed admin session token for browser clients.
const SessionCookie = "maricheck_session"

// SessionValidator validates an admin session token.
type SessionValidator interface {
	ValidateSession(token string) (*SessionClaims, error)
}

// SessionClaims is what the validator hands back for a good session.
type SessionClaims struct {
	AdminID  id.AdminID
	Username string
}

// TokenFromRequest reads the session token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if after, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// RequireAdmin rejects requests without a valid admin session and injects the
// administrator into the context otherwise.
func RequireAdmin(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token := TokenFromRequest(r)
			if token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing session",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Admin login required"))
				return
			}

			claims, err := validator.ValidateSession(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid session",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired session"))
				return
			}

			ctx = requestcontext.WithAdmin(ctx, claims.AdminID, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
