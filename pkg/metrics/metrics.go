package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gate rejection reasons
const (
	ReasonNoToken      = "no_token"
	ReasonExpired      = "expired"
	ReasonInvalid      = "invalid"
	ReasonUserNotFound = "user_not_found"
	ReasonLookupFailed = "lookup_failed"
)

// Auth flows
const (
	FlowRegister = "register"
	FlowLogin    = "login"
	FlowGoogle   = "google"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status_code"},
	)
)

// Auth Metrics
var (
	AuthGateRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_gate_rejections_total",
			Help: "Requests rejected by the bearer token gate",
		},
		[]string{"reason"},
	)

	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Sign-up and sign-in attempts by flow and outcome",
		},
		[]string{"flow", "outcome"},
	)
)
