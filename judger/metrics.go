package judger

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "solrun"

// Metrics counts judged cases by verdict and observes per-case run
// duration. Register once per process; the judger takes it optionally.
type Metrics struct {
	verdicts     *prometheus.CounterVec
	caseDuration prometheus.Histogram
}

// NewMetrics creates and registers the judge metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "judge",
			Name:      "cases_total",
			Help:      "Judged test cases by verdict.",
		}, []string{"verdict"}),
		caseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "judge",
			Name:      "case_duration_seconds",
			Help:      "Wall time spent running a single test case.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}
	reg.MustRegister(m.verdicts, m.caseDuration)
	return m
}

func (m *Metrics) observe(v Verdict, d time.Duration) {
	verdict := "fail"
	if v.Passed {
		verdict = "pass"
	}
	m.verdicts.WithLabelValues(verdict).Inc()
	m.caseDuration.Observe(d.Seconds())
}
