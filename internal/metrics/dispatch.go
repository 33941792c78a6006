// Package metrics exposes prometheus instrumentation for the
// dispatcher's query, broadcast, and dispatch activity.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchQueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "query_total",
		Help:      "Count of alarm status queries issued against the contract.",
	}, []string{"alarm_type", "status"})

	dispatchQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "query_duration_seconds",
		Help:      "Duration of alarm status queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"alarm_type", "status"})

	dispatchBroadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "broadcast_total",
		Help:      "Count of broadcast-and-commit attempts.",
	}, []string{"alarm_type", "status"})

	dispatchBroadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of broadcast-and-commit round trips.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	}, []string{"alarm_type", "status"})

	dispatchedAlarmsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "dispatched_alarms_total",
		Help:      "Count of alarms confirmed dispatched.",
	}, []string{"alarm_type"})

	dispatchTxOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "tx_outcome_total",
		Help:      "Count of observed commit outcomes by on-chain result code.",
	}, []string{"alarm_type", "code"})

	dispatchTxGasUsed = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "alarms_dispatcher",
		Subsystem: "dispatch",
		Name:      "tx_gas_used",
		Help:      "Gas consumed per committed transaction.",
		Buckets:   prometheus.ExponentialBuckets(10_000, 2, 10),
	}, []string{"alarm_type"})
)

// Dispatch tracks metrics for one alarm type's dispatch engine.
type Dispatch struct {
	alarmType string
}

// NewDispatch constructs a Dispatch recorder with defaults.
func NewDispatch(alarmType string) *Dispatch {
	if alarmType == "" {
		alarmType = "unknown"
	}
	return &Dispatch{alarmType: alarmType}
}

// ObserveQuery records a status-query attempt outcome and duration.
func (m Dispatch) ObserveQuery(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dispatchQueryTotal.WithLabelValues(m.alarmType, status).Inc()
	dispatchQueryDuration.WithLabelValues(m.alarmType, status).
		Observe(time.Since(started).Seconds())
}

// ObserveBroadcast records a broadcast-and-commit attempt outcome and
// duration.
func (m Dispatch) ObserveBroadcast(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dispatchBroadcastTotal.WithLabelValues(m.alarmType, status).Inc()
	dispatchBroadcastDuration.WithLabelValues(m.alarmType, status).
		Observe(time.Since(started).Seconds())
}

// ObserveDispatched records alarms confirmed dispatched by one
// transaction.
func (m Dispatch) ObserveDispatched(count uint32) {
	dispatchedAlarmsTotal.WithLabelValues(m.alarmType).Add(float64(count))
}

// ObserveTxOutcome records an observed commit outcome and its gas use.
func (m Dispatch) ObserveTxOutcome(code uint32, gasUsed int64) {
	dispatchTxOutcomeTotal.WithLabelValues(m.alarmType, strconv.FormatUint(uint64(code), 10)).Inc()
	dispatchTxGasUsed.WithLabelValues(m.alarmType).Observe(float64(gasUsed))
}
