package backends

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var storeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "polyglot_store_operation_duration_seconds",
	Help:    "Latency of backing store operations",
	Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
}, []string{"store", "operation"})

// ObserveStore starts timing one store operation. Call the returned func when
// the operation finishes:
//
//	defer backends.ObserveStore("redis", "create_session")()
func ObserveStore(store, operation string) func() {
	start := time.Now()
	return func() {
		storeDuration.WithLabelValues(store, operation).Observe(time.Since(start).Seconds())
	}
}
