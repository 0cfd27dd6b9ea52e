package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds admin login collectors. A nil *Metrics records nothing.
type Metrics struct {
	LoginsTotal *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		LoginsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "maricheck_admin_logins_total",
			Help: "Admin login attempts by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementLogins(outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}
