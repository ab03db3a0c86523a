package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plans_generated_total",
			Help: "Total number of plans generated by kind",
		},
		[]string{"kind"},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Plan kinds recorded by PlansGenerated.
const (
	PlanDiet            = "diet"
	PlanWorkout         = "workout"
	PlanRecommendations = "recommendations"
	PlanMacroTargets    = "macro_targets"
)
