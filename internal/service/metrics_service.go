package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the analysis
// gateway.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	decodeDuration  prometheus.Observer
	analyzeDuration prometheus.Observer
	solutionsTotal  prometheus.Counter
	comparisonSize  prometheus.Observer
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	decodeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solution_decode_duration_seconds",
		Help:    "Duration of solution document decoding",
		Buckets: prometheus.DefBuckets,
	})

	analyzeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solution_analysis_duration_seconds",
		Help:    "Duration of the combined analysis passes",
		Buckets: prometheus.DefBuckets,
	})

	solutionsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "solutions_analyzed_total",
		Help: "Total solution documents analyzed",
	})

	comparisonSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "comparison_batch_size",
		Help:    "Number of schedules per comparison request",
		Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16},
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite,
		cacheHits, cacheMisses, decodeDuration, analyzeDuration, solutionsTotal,
		comparisonSize, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		decodeDuration:  decodeDuration,
		analyzeDuration: analyzeDuration,
		solutionsTotal:  solutionsTotal,
		comparisonSize:  comparisonSize,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records cache hit/miss metrics.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil || m.cacheWrite == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDecode records the decode pass duration.
func (m *MetricsService) ObserveDecode(duration time.Duration) {
	if m == nil {
		return
	}
	m.decodeDuration.Observe(duration.Seconds())
}

// ObserveAnalysis records the combined analysis pass duration and bumps the
// analyzed-solutions counter.
func (m *MetricsService) ObserveAnalysis(duration time.Duration) {
	if m == nil {
		return
	}
	m.analyzeDuration.Observe(duration.Seconds())
	m.solutionsTotal.Inc()
}

// ObserveComparison records the size of a comparison batch.
func (m *MetricsService) ObserveComparison(batchSize int) {
	if m == nil {
		return
	}
	m.comparisonSize.Observe(float64(batchSize))
}
