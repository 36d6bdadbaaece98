package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Drop reasons.
const (
	reasonUnavailable = "unavailable"
	reasonCircuitOpen = "circuit_open"
	reasonBufferFull  = "buffer_full"
	reasonClosed      = "closed"
)

// Metrics holds Prometheus metrics for audit tracking.
type Metrics struct {
	Recorded            prometheus.Counter
	Dropped             *prometheus.CounterVec
	WriteFailures       prometheus.Counter
	CircuitBreakerState prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with audit metrics registered.
func NewMetrics() *Metrics {
	return &Metrics{
		Recorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "polyglot_audit_recorded_total",
			Help: "Total number of audit entries written to the log store",
		}),
		Dropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "polyglot_audit_dropped_total",
			Help: "Total number of audit entries skipped before a write was attempted",
		}, []string{"reason"}),
		WriteFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "polyglot_audit_write_failures_total",
			Help: "Total number of audit entries the log store rejected or failed to persist",
		}),
		CircuitBreakerState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "polyglot_audit_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed/healthy, 1=open/unhealthy)",
		}),
	}
}

func (m *Metrics) incDropped(reason string) {
	if m == nil {
		return
	}
	m.Dropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) incRecorded() {
	if m == nil {
		return
	}
	m.Recorded.Inc()
}

func (m *Metrics) incWriteFailures() {
	if m == nil {
		return
	}
	m.WriteFailures.Inc()
}

func (m *Metrics) setCircuitBreakerState(open bool) {
	if m == nil {
		return
	}
	if open {
		m.CircuitBreakerState.Set(1)
	} else {
		m.CircuitBreakerState.Set(0)
	}
}
