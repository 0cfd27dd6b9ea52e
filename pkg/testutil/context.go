package testutil

import (
	"net/http"

	id "maricheck/pkg/domain"
	"maricheck/pkg/requestcontext"
)

// WithAdmin simulates what the admin session middleware does for an
// authenticated request.
func WithAdmin(req *http.Request, adminID int64, username string) *http.Request {
	ctx := requestcontext.WithAdmin(req.Context(), id.AdminID(adminID), username)
	return req.WithContext(ctx)
}

// WithClientMetadata sets the client IP and User-Agent as the metadata middleware would.
func WithClientMetadata(req *http.Request, clientIP, userAgent string) *http.Request {
	ctx := requestcontext.WithClientMetadata(req.Context(), clientIP, userAgent)
	return req.WithContext(ctx)
}
