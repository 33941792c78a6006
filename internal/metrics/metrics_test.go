package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestDispatchRecords(t *testing.T) {
	m := NewDispatch("")
	start := time.Now().Add(-time.Second)

	if inc := delta(t, dispatchQueryTotal.WithLabelValues("unknown", "success"), func() {
		m.ObserveQuery(nil, start)
	}); inc != 1 {
		t.Fatalf("expected query counter increment, got %v", inc)
	}

	if inc := delta(t, dispatchQueryTotal.WithLabelValues("unknown", "error"), func() {
		m.ObserveQuery(errors.New("boom"), start)
	}); inc != 1 {
		t.Fatalf("expected query error counter increment, got %v", inc)
	}

	m = NewDispatch("market price")

	if inc := delta(t, dispatchBroadcastTotal.WithLabelValues("market price", "success"), func() {
		m.ObserveBroadcast(nil, start)
	}); inc != 1 {
		t.Fatalf("expected broadcast counter increment, got %v", inc)
	}

	if inc := delta(t, dispatchedAlarmsTotal.WithLabelValues("market price"), func() {
		m.ObserveDispatched(32)
	}); inc != 32 {
		t.Fatalf("expected dispatched counter to grow by batch size, got %v", inc)
	}

	if inc := delta(t, dispatchTxOutcomeTotal.WithLabelValues("market price", "5"), func() {
		m.ObserveTxOutcome(5, 11000)
	}); inc != 1 {
		t.Fatalf("expected tx outcome counter increment, got %v", inc)
	}
}

func TestChainRPCRecords(t *testing.T) {
	m := NewChainRPC()
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, chainRPCRequestsTotal.WithLabelValues("broadcast_tx_commit", "success"), func() {
		m.Observe("broadcast_tx_commit", nil, start)
	}); inc != 1 {
		t.Fatalf("expected rpc call counter increment, got %v", inc)
	}

	if inc := delta(t, chainRPCRequestsTotal.WithLabelValues("broadcast_tx_commit", "error"), func() {
		m.Observe("broadcast_tx_commit", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected rpc call error counter increment, got %v", inc)
	}
}
