package clients

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"polyglot/internal/registry"
	dErrors "polyglot/pkg/domain-errors"
)

type callMetrics struct {
	duration *prometheus.HistogramVec
}

var defaultCallMetrics = &callMetrics{
	duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polyglot_backend_call_duration_seconds",
		Help:    "Latency of calls to backing services by service, operation and outcome",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"service", "operation", "outcome"}),
}

func (m *callMetrics) observe(svc registry.ServiceName, op registry.Operation, err error, d time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
	}
	m.duration.WithLabelValues(string(svc), string(op), outcome).Observe(d.Seconds())
}
