package resilience

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors shared by every Policy in the
// process. Register it once against the default registry at startup.
type Metrics struct {
	callsTotal    *prometheus.CounterVec
	callDuration  *prometheus.HistogramVec
	breakerState  *prometheus.GaugeVec
	retryAttempts *prometheus.HistogramVec
}

// NewMetrics creates and registers the resilience kernel's collectors.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resilience_calls_total",
			Help: "Total calls made through a named resilience policy, by outcome.",
		}, []string{"policy", "outcome"}),
		callDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "resilience_call_duration_seconds",
			Help:    "Duration of calls made through a named resilience policy, including retries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"policy"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "resilience_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open).",
		}, []string{"policy"}),
		retryAttempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "resilience_retry_attempts",
			Help:    "Number of attempts a call needed before settling.",
			Buckets: []float64{1, 2, 3, 4, 5, 8},
		}, []string{"policy"}),
	}

	registry.MustRegister(m.callsTotal, m.callDuration, m.breakerState, m.retryAttempts)
	return m
}

// ObserveCall records the outcome of one Policy.Do invocation.
func (m *Metrics) ObserveCall(policy string, attempts int, elapsed time.Duration, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.callsTotal.WithLabelValues(policy, outcome).Inc()
	m.callDuration.WithLabelValues(policy).Observe(elapsed.Seconds())
	m.retryAttempts.WithLabelValues(policy).Observe(float64(attempts))
}

// RecordBreakerState records a circuit breaker state transition.
func (m *Metrics) RecordBreakerState(policy, state string) {
	var v float64
	switch state {
	case "half-open":
		v = 1
	case "open":
		v = 2
	default:
		v = 0
	}
	m.breakerState.WithLabelValues(policy).Set(v)
}
