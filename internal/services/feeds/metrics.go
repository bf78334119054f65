package feeds

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedcast_feed_fetch_attempts_total",
		Help: "Total number of feed fetch attempts, including retries",
	})
	fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedcast_feed_fetch_failures_total",
		Help: "Total number of feed loads that failed to obtain the feed",
	})
	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "feedcast_feed_fetch_duration_seconds",
		Help:    "Time spent obtaining the raw feed",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms up to ~40s
	})
	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "feedcast_feed_parse_duration_seconds",
		Help:    "Time spent parsing the feed",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	})
	malformedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedcast_feed_malformed_events_total",
		Help: "Total number of feed events skipped because they could not be decoded",
	})
	episodesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "feedcast_feed_episodes",
		Help: "Number of episodes in the most recently loaded feed",
	})
)
