package udf

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusReporter is a Reporter backed by a prometheus counter vector
// labeled by counter group and name.
type PrometheusReporter struct {
	Counters *prometheus.CounterVec
}

// NewPrometheusReporter returns a reporter with unregistered collectors.
func NewPrometheusReporter() *PrometheusReporter {
	const (
		namespace = "brickhouse"
		subsystem = "udf"
	)

	return &PrometheusReporter{
		Counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "counters_total",
			Help:      "Counters incremented by functions, by group and counter name",
		}, []string{"group", "counter"}),
	}
}

// IncrCounter adds amount to the counter. Negative amounts are ignored.
func (r *PrometheusReporter) IncrCounter(group, counter string, amount int64) {
	if amount < 0 {
		return
	}
	r.Counters.WithLabelValues(group, counter).Add(float64(amount))
}

// PrometheusCollectors returns the collectors to register.
func (r *PrometheusReporter) PrometheusCollectors() []prometheus.Collector {
	return []prometheus.Collector{r.Counters}
}
