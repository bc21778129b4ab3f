// Package coremetrics instruments Selector from the outside. The core
// package (internal/refreshrate) never imports Prometheus; callers that
// want metrics pass a *Recorder, built once, into their own call sites
// around the facade.
package coremetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	selectBestCalls = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refreshrate",
		Name:      "selectbest_calls_total",
		Help:      "Total GetBestRefreshRate invocations.",
	})

	selectBestCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refreshrate",
		Name:      "selectbest_cache_hits_total",
		Help:      "GetBestRefreshRate calls served from the single-entry cache.",
	})

	selectBestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "refreshrate",
		Name:      "selectbest_duration_seconds",
		Help:      "GetBestRefreshRate wall time.",
		Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
	})

	setPolicyRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "refreshrate",
		Name:      "setpolicy_rejected_total",
		Help:      "SetPolicy calls rejected for violating a policy invariant.",
	})
)

// Recorder wraps a call to Selector.GetBestRefreshRate (or any other
// facade call worth timing) with the package-level counters above.
type Recorder struct{}

// ObserveBest records one GetBestRefreshRate call's duration and whether
// it was served from cache.
func (Recorder) ObserveBest(start time.Time, cacheHit bool) {
	selectBestCalls.Inc()
	selectBestDuration.Observe(time.Since(start).Seconds())
	if cacheHit {
		selectBestCacheHits.Inc()
	}
}

// ObserveSetPolicyRejected records a rejected SetPolicy call.
func (Recorder) ObserveSetPolicyRejected() {
	setPolicyRejected.Inc()
}
