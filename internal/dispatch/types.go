// Package dispatch drives alarm queues to completion: per alarm type a
// state machine queries remaining work, submits fee-bounded batch
// transactions until the queue drains, and yields to the poll-period
// sleep between rounds.
package dispatch

import (
	"context"
	"time"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/chain"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/signer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ContractQuerier executes read-only smart-contract queries.
	ContractQuerier interface {
		QuerySmart(ctx context.Context, contract string, payload []byte) ([]byte, error)
	}

	// Broadcaster submits a signed transaction and blocks for its
	// commit outcome.
	Broadcaster interface {
		BroadcastCommit(ctx context.Context, txBytes []byte) (*chain.TxOutcome, error)
	}

	// TransactionBuilder produces a signed batch-execute transaction
	// bound to the identity's current sequence.
	TransactionBuilder interface {
		BuildSigned(identity *signer.Identity, contract string, execMsg []byte, maxCount uint32) ([]byte, error)
	}

	// EngineMetrics records the engine's query, broadcast, and
	// dispatch activity.
	EngineMetrics interface {
		ObserveQuery(err error, started time.Time)
		ObserveBroadcast(err error, started time.Time)
		ObserveDispatched(count uint32)
		ObserveTxOutcome(code uint32, gasUsed int64)
	}

	// EnginePass is one alarm type's engine as the scheduler sees it.
	EnginePass interface {
		AlarmType() string
		RunPass(ctx context.Context) (PassStats, error)
	}

	// QueryStatus is the decoded contract answer to a status query.
	// Opaque beyond its single predicate.
	QueryStatus interface {
		RemainingForDispatch() bool
	}

	// DispatchResult is the decoded execution payload of a committed
	// dispatch transaction.
	DispatchResult interface {
		DispatchedCount() uint32
	}
)
