package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// page renders by outcome: ok, halted, unknown
	PageRenderCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitetwin_page_render_total",
			Help: "Total number of dashboard page renders",
		},
		[]string{"page", "outcome"},
	)

	// weather API latency (seconds)
	WeatherFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sitetwin_weather_fetch_duration_seconds",
			Help:    "Weather forecast fetch duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		},
		[]string{"status"},
	)

	// EVA workbook uploads
	UploadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sitetwin_eva_upload_total",
			Help: "Total number of EVA workbook uploads",
		},
		[]string{"status"}, // status: success, rejected, failed
	)
)

// RecordPageRender counts one page render
func RecordPageRender(page, outcome string) {
	PageRenderCount.WithLabelValues(page, outcome).Inc()
}

// RecordWeatherFetch observes one weather fetch
func RecordWeatherFetch(status string, duration time.Duration) {
	WeatherFetchDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// IncrementUpload counts one EVA upload
func IncrementUpload(status string) {
	UploadCount.WithLabelValues(status).Inc()
}
