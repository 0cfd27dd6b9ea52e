// Package httpapi assembles the middleware chain and mounts every module's routes.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"maricheck/internal/platform/metrics"
	"maricheck/pkg/platform/httputil"
	auth "maricheck/pkg/platform/middleware/auth"
	metadata "maricheck/pkg/platform/middleware/metadata"
	request "maricheck/pkg/platform/middleware/request"
	"maricheck/pkg/platform/middleware/requesttime"
)

// RouteRegistrar is implemented by module handlers.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// AdminRouteRegistrar is implemented by handlers with routes behind the admin session.
type AdminRouteRegistrar interface {
	RegisterAdmin(r chi.Router)
}

// AdminSessionRegistrar is implemented by handlers with session-bound routes.
type AdminSessionRegistrar interface {
	RegisterAuthenticated(r chi.Router)
}

// HealthCheck reports whether one backing service is reachable.
type HealthCheck func(ctx context.Context) error

type RouterDependencies struct {
	Logger           *slog.Logger
	Metrics          *metrics.Metrics
	MetricsHandler   http.Handler
	SessionValidator auth.SessionValidator
	RequestTimeout   time.Duration

	Public  []RouteRegistrar
	Admin   []AdminRouteRegistrar
	Session []AdminSessionRegistrar

	HealthChecks map[string]HealthCheck
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewRouter builds the application router.
func NewRouter(deps RouterDependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(logger))
	r.Use(deps.Metrics.Middleware)
	if deps.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(deps.RequestTimeout))
	}

	r.Get("/health", healthHandler(deps.HealthChecks))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	for _, h := range deps.Public {
		h.Register(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(deps.SessionValidator, logger))
		for _, h := range deps.Session {
			h.RegisterAuthenticated(r)
		}
		for _, h := range deps.Admin {
			h.RegisterAdmin(r)
		}
	})

	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			err := check(ctx)
			cancel()
			if err != nil {
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
