// Package metrics provides Prometheus metrics for the team balancer service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus instruments for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Search metrics
	searchesTotal      prometheus.Counter
	searchErrors       prometheus.Counter
	searchAttempts     prometheus.Counter
	searchDuration     prometheus.Histogram
	bestSkillDiff      prometheus.Gauge
	fallbackPlacements prometheus.Counter

	// Roster metrics
	rostersLoaded   prometheus.Counter
	eligiblePlayers prometheus.Gauge
	workbooksOut    prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry so default Go runtime collectors stay out of the way.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hts",
		subsystem:        "balancer",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.searchesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Total number of partition searches run",
	})

	m.searchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_errors_total",
		Help:      "Total number of searches that failed validation or were cancelled",
	})

	m.searchAttempts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_attempts_total",
		Help:      "Total number of constructive attempts executed across all searches",
	})

	m.searchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_duration_milliseconds",
		Help:      "Histogram of end-to-end search duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.bestSkillDiff = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "best_skill_diff",
		Help:      "Skill difference of the most recent search result",
	})

	m.fallbackPlacements = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallback_placements_total",
		Help:      "Capacity overflows absorbed by the fallback policy (frequent firing means the roster mix cannot satisfy the targets)",
	})

	m.rostersLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rosters_loaded_total",
		Help:      "Total number of rosters loaded from input sources",
	})

	m.eligiblePlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "eligible_players",
		Help:      "Eligible player count of the most recently loaded roster",
	})

	m.workbooksOut = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "workbooks_written_total",
		Help:      "Total number of result workbooks written",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds by endpoint, method and status",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// RecordSearch increments the searches counter.
func RecordSearch() {
	globalManager.searchesTotal.Inc()
}

// RecordSearchError increments the failed-search counter.
func RecordSearchError() {
	globalManager.searchErrors.Inc()
}

// RecordSearchAttempts adds the attempts executed by one search.
func RecordSearchAttempts(n int) {
	globalManager.searchAttempts.Add(float64(n))
}

// RecordSearchDuration records one search's duration in milliseconds.
func RecordSearchDuration(ms float64) {
	globalManager.searchDuration.Observe(ms)
}

// UpdateBestSkillDiff sets the latest search result's skill difference.
func UpdateBestSkillDiff(diff int) {
	globalManager.bestSkillDiff.Set(float64(diff))
}

// RecordFallbackPlacements adds overflow placements from one search result.
func RecordFallbackPlacements(n int) {
	globalManager.fallbackPlacements.Add(float64(n))
}

// RecordRosterLoaded increments the loaded-roster counter.
func RecordRosterLoaded() {
	globalManager.rostersLoaded.Inc()
}

// UpdateEligiblePlayers sets the latest roster's eligible player count.
func UpdateEligiblePlayers(count int) {
	globalManager.eligiblePlayers.Set(float64(count))
}

// RecordWorkbookWritten increments the written-workbook counter.
func RecordWorkbookWritten() {
	globalManager.workbooksOut.Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request's duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// GetRegistry returns the custom Prometheus registry for serving /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
