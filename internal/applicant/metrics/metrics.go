package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds applicant intake and review collectors. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	RegistrationsTotal   *prometheus.CounterVec
	DocumentsStored      *prometheus.CounterVec
	TransitionsTotal     *prometheus.CounterVec
	ProfileTokensIssued  prometheus.Counter
	ProfileAccessDenied  prometheus.Counter
	ExportDuration       *prometheus.HistogramVec
	RegistrationDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maricheck_applicant_registrations_total",
			Help: "Applicant registrations by variant",
		}, []string{"variant"}),
		DocumentsStored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maricheck_applicant_documents_stored_total",
			Help: "Stored applicant documents by slot",
		}, []string{"slot"}),
		TransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "maricheck_applicant_status_transitions_total",
			Help: "Review actions by variant, action and whether they were applied",
		}, []string{"variant", "action", "applied"}),
		ProfileTokensIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "maricheck_profile_tokens_issued_total",
			Help: "Profile access tokens minted",
		}),
		ProfileAccessDenied: factory.NewCounter(prometheus.CounterOpts{
			Name: "maricheck_profile_access_denied_total",
			Help: "Private profile requests rejected for an unknown id or token",
		}),
		ExportDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maricheck_applicant_export_duration_seconds",
			Help:    "CSV export latency by variant",
			Buckets: prometheus.DefBuckets,
		}, []string{"variant"}),
		RegistrationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "maricheck_applicant_registration_duration_seconds",
			Help:    "Registration latency including document storage",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"variant"}),
	}
}

func (m *Metrics) IncrementRegistrations(variant string) {
	if m == nil {
		return
	}
	m.RegistrationsTotal.WithLabelValues(variant).Inc()
}

func (m *Metrics) IncrementDocumentsStored(slot string) {
	if m == nil {
		return
	}
	m.DocumentsStored.WithLabelValues(slot).Inc()
}

func (m *Metrics) IncrementTransitions(variant, action string, applied bool) {
	if m == nil {
		return
	}
	label := "false"
	if applied {
		label = "true"
	}
	m.TransitionsTotal.WithLabelValues(variant, action, label).Inc()
}

func (m *Metrics) IncrementProfileTokensIssued() {
	if m == nil {
		return
	}
	m.ProfileTokensIssued.Inc()
}

func (m *Metrics) IncrementProfileAccessDenied() {
	if m == nil {
		return
	}
	m.ProfileAccessDenied.Inc()
}

func (m *Metrics) ObserveExport(variant string, start time.Time) {
	if m == nil {
		return
	}
	m.ExportDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveRegistration(variant string, start time.Time) {
	if m == nil {
		return
	}
	m.RegistrationDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())
}
