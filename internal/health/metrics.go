package health

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	serviceUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "polyglot_backend_available",
		Help: "1 when the backing service passed its last health probe",
	}, []string{"service"})

	probeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polyglot_health_probe_duration_seconds",
		Help:    "Duration of backing service health probes",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"service"})
)
