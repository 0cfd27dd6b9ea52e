package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds rate limiter collectors. A nil *Metrics records nothing.
type Metrics struct {
	ChecksTotal    *prometheus.CounterVec
	StoreErrors    prometheus.Counter
	BreakerOpen    prometheus.Gauge
	FallbackChecks prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maricheck_ratelimit_checks_total",
			Help: "Rate limit decisions by endpoint class and outcome",
		}, []string{"class", "outcome"}),
		StoreErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "maricheck_ratelimit_store_errors_total",
			Help: "Failed calls to the shared rate limit store",
		}),
		BreakerOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "maricheck_ratelimit_breaker_open",
			Help: "1 while rate limiting runs on the in-memory fallback",
		}),
		FallbackChecks: factory.NewCounter(prometheus.CounterOpts{
			Name: "maricheck_ratelimit_fallback_checks_total",
			Help: "Rate limit decisions served by the in-memory fallback",
		}),
	}
}

func (m *Metrics) IncrementChecks(class string, allowed bool) {
	if m == nil {
		return
	}
	outcome := "allowed"
	if !allowed {
		outcome = "denied"
	}
	m.ChecksTotal.WithLabelValues(class, outcome).Inc()
}

func (m *Metrics) IncrementStoreErrors() {
	if m == nil {
		return
	}
	m.StoreErrors.Inc()
}

func (m *Metrics) IncrementFallbackChecks() {
	if m == nil {
		return
	}
	m.FallbackChecks.Inc()
}

func (m *Metrics) SetBreakerOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.BreakerOpen.Set(1)
		return
	}
	m.BreakerOpen.Set(0)
}
