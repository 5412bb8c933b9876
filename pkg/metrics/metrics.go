package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the ordnance service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database metrics
	DatabaseConnections prometheus.Gauge

	// Redis metrics
	RedisConnections prometheus.Gauge

	// Business metrics
	ReadinessComputationsTotal prometheus.Counter
	ReadinessOverall           prometheus.Gauge
	RecommendationsTotal       *prometheus.CounterVec
	RecommendationAttempts     *prometheus.HistogramVec
	ForecastsTotal             prometheus.Counter
	TransfersTotal             prometheus.Counter
	CacheHits                  *prometheus.CounterVec
	CacheMisses                *prometheus.CounterVec

	// Health metrics
	DependencyHealth *prometheus.GaugeVec
}

// New creates a new Metrics instance with all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordnance_service_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ordnance_service_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ordnance_service_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),

		DatabaseConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ordnance_service_database_connections",
				Help: "Current number of database connections",
			},
		),
		RedisConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ordnance_service_redis_connections",
				Help: "Current number of Redis connections",
			},
		),

		ReadinessComputationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ordnance_service_readiness_computations_total",
				Help: "Total number of readiness snapshot computations",
			},
		),
		ReadinessOverall: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ordnance_service_readiness_overall_percent",
				Help: "Most recently computed overall readiness percentage",
			},
		),
		RecommendationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordnance_service_recommendations_total",
				Help: "Total number of recommendations by source",
			},
			[]string{"source"},
		),
		RecommendationAttempts: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ordnance_service_recommendation_attempts",
				Help:    "Provider attempts consumed per recommendation",
				Buckets: []float64{1, 2, 3, 4, 5},
			},
			[]string{"source"},
		),
		ForecastsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ordnance_service_forecasts_total",
				Help: "Total number of forecasts generated",
			},
		),
		TransfersTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ordnance_service_transfers_total",
				Help: "Total number of completed ordnance transfers",
			},
		),
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordnance_service_cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordnance_service_cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),

		DependencyHealth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ordnance_service_dependency_health",
				Help: "Health status of dependencies (1 = healthy, 0 = unhealthy)",
			},
			[]string{"dependency"},
		),
	}
}

// Initialize sets up initial metric values
func (m *Metrics) Initialize() {
	m.DependencyHealth.WithLabelValues("postgres").Set(0)
	m.DependencyHealth.WithLabelValues("redis").Set(0)
}

// UpdateDependencyHealth updates the health status of a dependency
func (m *Metrics) UpdateDependencyHealth(dependency string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	m.DependencyHealth.WithLabelValues(dependency).Set(value)
}

// RecordRecommendation records a completed recommendation
func (m *Metrics) RecordRecommendation(source string, attempts int) {
	m.RecommendationsTotal.WithLabelValues(source).Inc()
	m.RecommendationAttempts.WithLabelValues(source).Observe(float64(attempts))
}
