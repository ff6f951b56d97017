package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// MetricsNamespace prefixes every metric the daemon exports.
const MetricsNamespace = "wowonder_admin"

var (
	counterOnce sync.Once
	counter     *prometheus.CounterVec //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct{}

// Run implements zerolog.Hook.
func (PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel && counter != nil {
		counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook registers wowonder_admin_log_statements_total on first use.
// The service label is fixed by the first caller.
func NewPrometheusHook(serviceName string) PrometheusHook {
	counterOnce.Do(func() {
		counter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   MetricsNamespace,
				Name:        "log_statements_total",
				Help:        "Number of log statements of the admin daemon by level.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{}
}
