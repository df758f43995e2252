package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "courses", Name: "http_requests_total", Help: "Handled HTTP requests by route pattern and status."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "courses", Name: "http_request_duration_seconds", Help: "HTTP request latency by route pattern.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	SeededRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "courses", Name: "seeded_records_total", Help: "Reference records written by catalog seeding."},
		[]string{"collection"},
	)
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "courses", Name: "form_submissions_total", Help: "Contact and subscription submissions by outcome."},
		[]string{"form", "outcome"},
	)
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "courses", Name: "cache_lookups_total", Help: "Catalog response cache lookups by result."},
		[]string{"result"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "courses", Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter."},
		[]string{"path"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(SeededRecords)
	reg.MustRegister(Submissions)
	reg.MustRegister(CacheLookups)
	reg.MustRegister(RateLimitRejected)
}
