package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketsync_api_requests_total",
			Help: "Requests sent to marketplace APIs.",
		},
		[]string{"method", "host", "status"},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketsync_api_request_duration_seconds",
			Help:    "Histogram of marketplace API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "host", "status"},
	)
	recordsPushed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketsync_records_pushed_total",
			Help: "Stock and price records accepted per channel.",
		},
		[]string{"channel", "kind"},
	)
	channelFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketsync_channel_failures_total",
			Help: "Channels that ended the run with an error.",
		},
		[]string{"channel"},
	)
	runDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketsync_run_duration_seconds",
			Help: "Wall time of the last synchronization pass.",
		},
	)
)

func init() {
	prometheus.MustRegister(apiRequestsTotal)
	prometheus.MustRegister(apiRequestDuration)
	prometheus.MustRegister(recordsPushed)
	prometheus.MustRegister(channelFailures)
	prometheus.MustRegister(runDuration)
}

// RecordRequest записывает метрики одного запроса к API маркетплейса.
func RecordRequest(method, host string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	apiRequestsTotal.WithLabelValues(method, host, status).Inc()
	apiRequestDuration.WithLabelValues(method, host, status).Observe(duration.Seconds())
}

func RecordPushed(channel, kind string, count int) {
	recordsPushed.WithLabelValues(channel, kind).Add(float64(count))
}

func RecordChannelFailure(channel string) {
	channelFailures.WithLabelValues(channel).Inc()
}

func RecordRunDuration(d time.Duration) {
	runDuration.Set(d.Seconds())
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// Push delivers the collected metrics to a pushgateway. The job runs once and
// exits, so there is no endpoint to scrape; pushing is the only way out.
func Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(prometheus.DefaultGatherer).Push()
}
