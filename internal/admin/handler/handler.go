package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"maricheck/internal/admin/models"
	ratelimitmodels "maricheck/internal/ratelimit/models"
	dErrors "maricheck/pkg/domain-errors"
	"maricheck/pkg/platform/httputil"
	auth "maricheck/pkg/platform/middleware/auth"
	"maricheck/pkg/requestcontext"
)

// Service defines the admin session operations.
type Service interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context)
}

// RateLimiter provides per-class request limiting.
type RateLimiter interface {
	RateLimit(class ratelimitmodels.EndpointClass) func(http.Handler) http.Handler
}

// Handler serves admin login, logout and identity endpoints.
type Handler struct {
	service      Service
	logger       *slog.Logger
	limiter      RateLimiter
	secureCookie bool
}

type Option func(*Handler)

// WithSecureCookie marks the session cookie Secure. Enable behind TLS.
func WithSecureCookie(secure bool) Option {
	return func(h *Handler) {
		h.secureCookie = secure
	}
}

// WithRateLimiter limits login attempts per client IP.
func WithRateLimiter(limiter RateLimiter) Option {
	return func(h *Handler) {
		h.limiter = limiter
	}
}

func New(service Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{service: service, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// Register registers the unauthenticated login route.
func (h *Handler) Register(r chi.Router) {
	if h.limiter != nil {
		r = r.With(h.limiter.RateLimit(ratelimitmodels.ClassLogin))
	}
	r.Post("/admin/login", h.HandleLogin)
}

// RegisterAuthenticated registers routes that need an admin session.
func (h *Handler) RegisterAuthenticated(r chi.Router) {
	r.Post("/admin/logout", h.HandleLogout)
	r.Get("/admin/me", h.HandleMe)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sess, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, &SessionResponse{
		Username:  sess.Admin.Username,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, &MessageResponse{Message: "You have been logged out."})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adminID := requestcontext.AdminID(ctx)
	if adminID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Admin login required"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &MeResponse{
		ID:       int64(adminID),
		Username: requestcontext.Username(ctx),
	})
}
