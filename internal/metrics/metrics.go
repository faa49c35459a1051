// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DeployItems counts terminal item results partitioned by outcome
	// ("success" or "failure").
	DeployItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bulk_deploy_items_total",
			Help: "Campaign deployment items by terminal outcome",
		},
		[]string{"outcome"},
	)

	// DeployRetries counts retries triggered by transient Ads API errors.
	DeployRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bulk_deploy_retries_total",
			Help: "Campaign creation retries after transient errors",
		},
	)

	// DeployItemDuration observes the wall time of one item including
	// back-off pauses.
	DeployItemDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bulk_deploy_item_duration_seconds",
			Help:    "Time to reach a terminal result for one deployment item",
			Buckets: prometheus.DefBuckets,
		},
	)

	// InFlight is the number of items currently being created.
	InFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bulk_deploy_inflight_items",
			Help: "Deployment items currently calling the Ads API",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request counts and latencies. Routes are labelled with
// the chi route pattern to keep cardinality low.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(rec.status),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}
