package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	PluginToggleTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "installgate_plugin_toggle_total",
			Help: "Plugin enable/disable requests by outcome",
		},
		[]string{"action", "result"},
	)

	PluginToggleLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "installgate_plugin_toggle_latency_ms",
			Help:    "Time spent enabling or disabling a plugin in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"action"},
	)

	PluginHookLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "installgate_plugin_hook_latency_ms",
			Help:    "Lifecycle hook duration in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"code", "hook"},
	)

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "installgate_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"method", "route", "status"},
	)

	CacheInvalidationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "installgate_cache_invalidations_total",
			Help: "Cache invalidations by origin",
		},
		[]string{"origin"},
	)
)

type MetricsConfig struct {
	EnableProcess bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{EnableProcess: true}
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	if cfg.EnableProcess {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Gatherer exposes the service registry to the metrics endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
