package service

import (
	"context"
	"log/slog"
	"time"

	"maricheck/internal/ratelimit/metrics"
	"maricheck/internal/ratelimit/models"
	"maricheck/pkg/platform/circuit"
	"maricheck/pkg/requestcontext"
)

// CounterStore increments fixed-window counters.
type CounterStore interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (count int, resetAt time.Time, err error)
}

const defaultStoreTimeout = 150 * time.Millisecond

// Limiter applies per-class fixed-window limits keyed by client IP. Checks go
// to the primary store; after repeated primary failures the breaker opens and
// the in-memory fallback answers until the primary has recovered.
type Limiter struct {
	primary      CounterStore
	fallback     CounterStore
	breaker      *circuit.Breaker
	limits       map[models.EndpointClass]models.Limit
	defaultLimit models.Limit
	storeTimeout time.Duration
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

type Option func(*Limiter)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) {
		l.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Limiter) {
		l.metrics = m
	}
}

// WithPrimary sets the shared store. Without one the fallback is authoritative.
func WithPrimary(store CounterStore) Option {
	return func(l *Limiter) {
		l.primary = store
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(l *Limiter) {
		l.breaker = b
	}
}

// WithClassLimit overrides the default limit for one endpoint class.
func WithClassLimit(class models.EndpointClass, limit models.Limit) Option {
	return func(l *Limiter) {
		l.limits[class] = limit
	}
}

func WithStoreTimeout(d time.Duration) Option {
	return func(l *Limiter) {
		if d > 0 {
			l.storeTimeout = d
		}
	}
}

// New creates a Limiter that applies defaultLimit to every class without an
// override. fallback must not be nil.
func New(fallback CounterStore, defaultLimit models.Limit, opts ...Option) *Limiter {
	l := &Limiter{
		fallback:     fallback,
		defaultLimit: defaultLimit,
		limits:       make(map[models.EndpointClass]models.Limit),
		storeTimeout: defaultStoreTimeout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.breaker == nil {
		l.breaker = circuit.New("ratelimit-store")
	}
	return l
}

// LimitFor returns the limit applied to a class.
func (l *Limiter) LimitFor(class models.EndpointClass) models.Limit {
	if limit, ok := l.limits[class]; ok {
		return limit
	}
	return l.defaultLimit
}

// Check counts one request from clientIP against the class budget. A nil
// error with an allowed result is returned whenever no store can answer.
func (l *Limiter) Check(ctx context.Context, class models.EndpointClass, clientIP string) (*models.Result, error) {
	limit := l.LimitFor(class)
	now := requestcontext.Now(ctx)
	if limit.Disabled() {
		return &models.Result{Allowed: true}, nil
	}
	key := models.NewKey(class, clientIP)

	if l.primary == nil {
		return l.checkFallback(ctx, class, key, limit, now)
	}

	storeCtx, cancel := context.WithTimeout(ctx, l.storeTimeout)
	count, resetAt, err := l.primary.Increment(storeCtx, key, limit.Window)
	cancel()
	if err != nil {
		l.metrics.IncrementStoreErrors()
		useFallback, change := l.breaker.RecordFailure()
		l.logChange(ctx, change)
		if !useFallback {
			l.logger.WarnContext(ctx, "rate limit store unavailable, allowing request",
				"class", class,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			return &models.Result{Allowed: true, Limit: limit.Requests, Remaining: limit.Requests, Degraded: true}, nil
		}
		return l.checkFallback(ctx, class, key, limit, now)
	}

	usePrimary, change := l.breaker.RecordSuccess()
	l.logChange(ctx, change)
	if !usePrimary {
		return l.checkFallback(ctx, class, key, limit, now)
	}
	result := models.NewResult(count, limit, resetAt, now)
	l.metrics.IncrementChecks(string(class), result.Allowed)
	return result, nil
}

func (l *Limiter) checkFallback(ctx context.Context, class models.EndpointClass, key string, limit models.Limit, now time.Time) (*models.Result, error) {
	count, resetAt, err := l.fallback.Increment(ctx, key, limit.Window)
	if err != nil {
		return nil, err
	}
	result := models.NewResult(count, limit, resetAt, now)
	result.Degraded = l.primary != nil
	if result.Degraded {
		l.metrics.IncrementFallbackChecks()
	}
	l.metrics.IncrementChecks(string(class), result.Allowed)
	return result, nil
}

func (l *Limiter) logChange(ctx context.Context, change circuit.Change) {
	switch {
	case change.Opened:
		l.metrics.SetBreakerOpen(true)
		l.logger.ErrorContext(ctx, "rate limit store circuit opened, using in-memory fallback",
			"breaker", l.breaker.Name(),
		)
	case change.Closed:
		l.metrics.SetBreakerOpen(false)
		l.logger.InfoContext(ctx, "rate limit store circuit closed",
			"breaker", l.breaker.Name(),
		)
	}
}
