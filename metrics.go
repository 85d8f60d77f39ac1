package gota

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/evdnx/gota/indicator/core"
)

type metrics struct {
	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gota_calls_total",
			Help: "Indicator calls by operation.",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gota_errors_total",
			Help: "Rejected indicator calls by operation and error code.",
		}, []string{"op", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gota_call_duration_seconds",
			Help:    "Indicator call latency.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op"}),
	}
	for _, c := range []prometheus.Collector{m.calls, m.errors, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func (m *metrics) observe(op string, code core.Code, d time.Duration) {
	m.calls.WithLabelValues(op).Inc()
	if code != core.Success {
		m.errors.WithLabelValues(op, code.String()).Inc()
	}
	m.duration.WithLabelValues(op).Observe(d.Seconds())
}
