package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuition_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tuition_http_request_duration_seconds",
			Help:    "Histogram of response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	ClaimsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuition_payment_claims_created_total",
			Help: "Payment claims accepted for verification",
		},
		[]string{"fee_type"},
	)

	// VerdictsReceived counts validator callbacks by contract (proof|claim) and verdict (valid|invalid).
	VerdictsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuition_verdicts_received_total",
			Help: "Validator verdict callbacks received",
		},
		[]string{"contract", "verdict"},
	)

	Reconciliations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuition_reconciliations_total",
			Help: "Fee reconciliations by fee type and outcome",
		},
		[]string{"fee_type", "outcome"},
	)

	// Notifications counts fan-out outcomes: inserted, duplicate, failed, skipped.
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuition_notifications_total",
			Help: "University notification fan-out outcomes",
		},
		[]string{"outcome"},
	)

	SideChannelCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuition_side_channel_calls_total",
			Help: "Best-effort outbound calls by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	SideChannelDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tuition_side_channel_duration_seconds",
			Help:    "Duration of best-effort outbound calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"channel"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCount,
			RequestDuration,
			ClaimsCreated,
			VerdictsReceived,
			Reconciliations,
			Notifications,
			SideChannelCalls,
			SideChannelDuration,
		)
	})
}
