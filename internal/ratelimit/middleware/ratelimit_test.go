package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maricheck/internal/ratelimit/models"
	"maricheck/internal/ratelimit/service"
	"maricheck/internal/ratelimit/store/bucket"
	"maricheck/pkg/platform/audit"
	"maricheck/pkg/platform/audit/publisher"
	auditmemory "maricheck/pkg/platform/audit/store/memory"
	"maricheck/pkg/requestcontext"
)

type failingLimiter struct{}

func (failingLimiter) Check(context.Context, models.EndpointClass, string) (*models.Result, error) {
	return nil, errors.New("boom")
}

type degradedLimiter struct{}

func (degradedLimiter) Check(context.Context, models.EndpointClass, string) (*models.Result, error) {
	return &models.Result{Allowed: true, Limit: 5, Remaining: 5, Degraded: true}, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/track?email=a@b.com", nil)
	ctx := requestcontext.WithClientMetadata(req.Context(), ip, "test")
	ctx = requestcontext.WithTime(ctx, time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func TestRateLimit_DeniesOverLimit(t *testing.T) {
	now := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	limiter := service.New(bucket.New(bucket.WithClock(func() time.Time { return now })),
		models.Limit{Requests: 2, Window: time.Minute})
	auditStore := auditmemory.NewInMemoryStore()
	mw := New(limiter, nil, WithAuditPublisher(publisher.NewPublisher(auditStore)))
	h := mw.RateLimit(models.ClassTrack)(okHandler())

	rec := serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1739174460", rec.Header().Get("X-RateLimit-Reset"))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Status"))

	serve(h, "10.0.0.1")
	rec = serve(h, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	var body models.ExceededResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate_limit_exceeded", body.Error)
	assert.Equal(t, 60, body.RetryAfter)

	events, err := auditStore.ListBySubject(context.Background(), "ip:10.0.0.1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventRateLimitExceeded), events[0].Action)
	assert.Equal(t, "track", events[0].Reason)

	// other clients keep their own budget
	rec = serve(h, "10.0.0.2")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit_LimiterErrorPassesThrough(t *testing.T) {
	h := New(failingLimiter{}, nil).RateLimit(models.ClassRegister)(okHandler())
	rec := serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_DegradedHeader(t *testing.T) {
	h := New(degradedLimiter{}, nil).RateLimit(models.ClassRegister)(okHandler())
	rec := serve(h, "10.0.0.1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "degraded", rec.Header().Get("X-RateLimit-Status"))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimit_Disabled(t *testing.T) {
	h := New(failingLimiter{}, nil, WithDisabled(true)).RateLimit(models.ClassLogin)(okHandler())
	for range 5 {
		rec := serve(h, "10.0.0.1")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
