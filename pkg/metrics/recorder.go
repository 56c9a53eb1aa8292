package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder handles metrics recording and exposure
type Recorder struct {
	// API metrics
	apiRequestCounter   *prometheus.CounterVec
	apiLatencyHistogram *prometheus.HistogramVec

	// Generation metrics
	generationCounter   *prometheus.CounterVec
	generationLatency   prometheus.Histogram
	portfolioValueGauge *prometheus.GaugeVec

	// Chart rendering metrics
	chartRenderCounter *prometheus.CounterVec

	// Publisher metrics
	snapshotPublishCounter *prometheus.CounterVec

	// Remote fallback metrics
	remoteFallbackCounter prometheus.Counter
}

// NewRecorder creates a new metrics recorder
func NewRecorder() *Recorder {
	return &Recorder{
		apiRequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pa_api_requests_total",
				Help: "The total number of API requests",
			},
			[]string{"method", "path", "status"},
		),
		apiLatencyHistogram: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pa_api_latency_seconds",
				Help:    "API request latency distribution",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"method", "path"},
		),
		generationCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pa_portfolio_generations_total",
				Help: "The total number of portfolio generations",
			},
			[]string{"position_set", "outcome"},
		),
		generationLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pa_portfolio_generation_duration_seconds",
				Help:    "Time taken to synthesize a portfolio record",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
			},
		),
		portfolioValueGauge: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pa_portfolio_total_value",
				Help: "Total value of each generated portfolio",
			},
			[]string{"portfolio_id"},
		),
		chartRenderCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pa_chart_renders_total",
				Help: "The total number of chart renders",
			},
			[]string{"series"},
		),
		snapshotPublishCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pa_snapshot_publishes_total",
				Help: "The total number of analytics snapshots published",
			},
			[]string{"outcome"},
		),
		remoteFallbackCounter: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pa_remote_fallbacks_total",
				Help: "How many times the remote backend was unreachable and synthesized data was served",
			},
		),
	}
}

// RecordAPIRequest records metrics for an API request
func (r *Recorder) RecordAPIRequest(method, path string, status int, latency time.Duration) {
	r.apiRequestCounter.WithLabelValues(method, path, statusLabel(status)).Inc()
	r.apiLatencyHistogram.WithLabelValues(method, path).Observe(latency.Seconds())
}

// RecordGeneration records a portfolio generation attempt
func (r *Recorder) RecordGeneration(positionSet string, err error, latency time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.generationCounter.WithLabelValues(positionSet, outcome).Inc()
	if err == nil {
		r.generationLatency.Observe(latency.Seconds())
	}
}

// RecordPortfolioValue records the headline value of a generated portfolio
func (r *Recorder) RecordPortfolioValue(portfolioID string, value float64) {
	r.portfolioValueGauge.WithLabelValues(portfolioID).Set(value)
}

// RecordChartRender records a chart render
func (r *Recorder) RecordChartRender(series string) {
	r.chartRenderCounter.WithLabelValues(series).Inc()
}

// RecordSnapshotPublish records an analytics snapshot publish attempt
func (r *Recorder) RecordSnapshotPublish(err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.snapshotPublishCounter.WithLabelValues(outcome).Inc()
}

// RecordRemoteFallback records a fallback to synthesized data
func (r *Recorder) RecordRemoteFallback() {
	r.remoteFallbackCounter.Inc()
}

func statusLabel(status int) string {
	switch {
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
