package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "chain_rpc",
		Name:      "requests_total",
		Help:      "Count of JSON-RPC requests against the chain node.",
	}, []string{"operation", "status"})

	chainRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "chain_rpc",
		Name:      "request_duration_seconds",
		Help:      "Duration of JSON-RPC requests against the chain node.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"operation", "status"})
)

// ChainRPC tracks metrics for the JSON-RPC broadcast channel.
type ChainRPC struct{}

// NewChainRPC constructs a ChainRPC recorder.
func NewChainRPC() *ChainRPC {
	return &ChainRPC{}
}

// Observe records one JSON-RPC call outcome and duration.
func (m ChainRPC) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	chainRPCRequestsTotal.WithLabelValues(operation, status).Inc()
	chainRPCRequestDuration.WithLabelValues(operation, status).
		Observe(time.Since(started).Seconds())
}
