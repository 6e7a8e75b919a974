package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"net/http"
)

var _ http.RoundTripper = &RoundTripper{}
var _ prometheus.Collector = &RoundTripper{}

// RoundTripper serves GET requests from a ResponseCache. Only 200 OK responses are cached: errors always go
// to the next RoundTripper.
type RoundTripper struct {
	cache   *ResponseCache
	store   Store
	next    http.RoundTripper
	logger  *slog.Logger
	metrics *metrics
}

func NewRoundTripper(store Store, next http.RoundTripper, logger *slog.Logger) *RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RoundTripper{
		cache:   NewResponseCache(store),
		store:   store,
		next:    next,
		logger:  logger,
		metrics: newMetrics(),
	}
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return r.next.RoundTrip(req)
	}

	r.metrics.attempts.Inc()
	cacheKey, resp, found, err := r.cache.Get(req.Context(), req)
	if err != nil {
		r.logger.Warn("failed to get cached response", "key", cacheKey, "err", err)
	}
	if found {
		r.metrics.hits.Inc()
		return resp, nil
	}

	if resp, err = r.next.RoundTrip(req); err != nil || resp.StatusCode != http.StatusOK {
		return resp, err
	}
	if err = r.cache.Put(req.Context(), cacheKey, resp); err != nil {
		r.logger.Warn("failed to cache response", "key", cacheKey, "err", err)
	}
	return resp, nil
}

func (r *RoundTripper) Describe(ch chan<- *prometheus.Desc) {
	r.metrics.attempts.Describe(ch)
	r.metrics.hits.Describe(ch)
	r.metrics.size.Describe(ch)
}

func (r *RoundTripper) Collect(ch chan<- prometheus.Metric) {
	r.metrics.attempts.Collect(ch)
	r.metrics.hits.Collect(ch)
	if s, ok := r.store.(interface{ Len() int }); ok {
		r.metrics.size.Set(float64(s.Len()))
		r.metrics.size.Collect(ch)
	}
}

type metrics struct {
	attempts prometheus.Counter
	hits     prometheus.Counter
	size     prometheus.Gauge
}

func newMetrics() *metrics {
	return &metrics{
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actorsearch",
			Subsystem: "tmdb",
			Name:      "cache_total",
			Help:      "Number of times the cache was tried",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "actorsearch",
			Subsystem: "tmdb",
			Name:      "cache_hit",
			Help:      "Number of times the cache was used",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "actorsearch",
			Subsystem: "tmdb",
			Name:      "cache_size",
			Help:      "Total number of cache entries (excluding expired items)",
		}),
	}
}
