package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "budget_server",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "status"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "budget_server",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"operation", "status"},
	)

	// AccountMutations counts settled account writes by kind and outcome.
	AccountMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "budget_server",
			Name:      "account_mutations_total",
			Help:      "Account create and delete actions processed by the operator",
		},
		[]string{"action", "outcome"},
	)
)

// HumaMiddleware observes latency and request counts per huma operation.
func HumaMiddleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		operation := ctx.Operation().OperationID
		status := strconv.Itoa(ctx.Status())
		httpRequestDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(operation, status).Inc()
	}
}

// ObserveMutation records the outcome of an account write.
func ObserveMutation(action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	AccountMutations.WithLabelValues(action, outcome).Inc()
}
