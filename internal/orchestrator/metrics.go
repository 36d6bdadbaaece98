package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for front-door operations.
type Metrics struct {
	Operations     *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with orchestrator metrics registered.
func NewMetrics() *Metrics {
	return &Metrics{
		Operations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "polyglot_operations_total",
			Help: "Front-door operations by operation and outcome (success, notice, error)",
		}, []string{"operation", "outcome"}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "polyglot_sessions_active",
			Help: "Sessions currently held by the session table",
		}),
	}
}

func (m *Metrics) observe(op string, notice Notice, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	switch {
	case err != nil:
		outcome = "error"
	case notice != NoticeNone:
		outcome = "notice"
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) setSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
