package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/config"
	"github.com/goodnatureofminers/alarms-dispatcher/internal/signer"
)

// PassStats summarizes one drain pass over a single alarm queue.
type PassStats struct {
	// Broadcasts counts transactions whose commit outcome was observed,
	// regardless of on-chain result code.
	Broadcasts int
	// Dispatched sums the alarm counts the contract confirmed.
	Dispatched uint64
}

// Engine drains one alarm type's queue. A pass repeats
// query-build-broadcast iterations until the contract reports no
// remaining work or an iteration ends the pass early.
type Engine struct {
	logger      *zap.Logger
	alarm       config.AlarmType
	identity    *signer.Identity
	querier     ContractQuerier
	broadcaster Broadcaster
	builder     TransactionBuilder
	codec       ResponseCodec
	metrics     EngineMetrics
	limiter     ratelimit.Limiter

	statusQuery []byte
	execMsg     []byte
}

// NewEngine constructs an engine for one alarm type. A nil limiter
// leaves the query rate uncapped.
func NewEngine(
	alarm config.AlarmType,
	identity *signer.Identity,
	querier ContractQuerier,
	broadcaster Broadcaster,
	builder TransactionBuilder,
	codec ResponseCodec,
	metrics EngineMetrics,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) (*Engine, error) {
	switch {
	case identity == nil:
		return nil, errors.New("identity is required")
	case querier == nil:
		return nil, errors.New("contract querier is required")
	case broadcaster == nil:
		return nil, errors.New("broadcaster is required")
	case builder == nil:
		return nil, errors.New("transaction builder is required")
	case codec.DecodeStatus == nil || codec.DecodeResult == nil:
		return nil, errors.New("response codec is required")
	case metrics == nil:
		return nil, errors.New("metrics recorder is required")
	case logger == nil:
		return nil, errors.New("logger is required")
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}

	statusQuery, err := EncodeStatusQuery()
	if err != nil {
		return nil, err
	}
	execMsg, err := EncodeDispatchAlarms(alarm.MaxBatchSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		logger:      logger.With(zap.String("alarm_type", alarm.Name)),
		alarm:       alarm,
		identity:    identity,
		querier:     querier,
		broadcaster: broadcaster,
		builder:     builder,
		codec:       codec,
		metrics:     metrics,
		limiter:     limiter,
		statusQuery: statusQuery,
		execMsg:     execMsg,
	}, nil
}

// AlarmType names the queue this engine drains.
func (e *Engine) AlarmType() string {
	return e.alarm.Name
}

// RunPass drains the queue until the contract reports no remaining
// work. It returns the stats accumulated so far together with a non-nil
// error only when the pass could not reach a conclusion: query,
// build, or broadcast transport failures. On-chain failures and
// undecodable execution payloads conclude the pass without error since
// the chain already accepted the transaction.
func (e *Engine) RunPass(ctx context.Context) (PassStats, error) {
	var stats PassStats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		e.limiter.Take()

		remaining, err := e.queryRemaining(ctx)
		if err != nil {
			return stats, err
		}
		if !remaining {
			e.logger.Debug("no alarms remaining for dispatch")
			return stats, nil
		}

		txBytes, err := e.builder.BuildSigned(
			e.identity, e.alarm.ContractAddress, e.execMsg, e.alarm.MaxBatchSize,
		)
		if err != nil {
			return stats, fmt.Errorf("build dispatch transaction: %w", err)
		}

		started := time.Now()
		outcome, err := e.broadcaster.BroadcastCommit(ctx, txBytes)
		e.metrics.ObserveBroadcast(err, started)
		if err != nil {
			// No commit outcome was observed, so the sequence was not
			// consumed and must not advance.
			return stats, fmt.Errorf("broadcast dispatch transaction: %w", err)
		}
		stats.Broadcasts++

		// The node consumed the sequence the moment it processed the
		// transaction, success or not.
		e.identity.AdvanceSequence()

		e.metrics.ObserveTxOutcome(outcome.Code, outcome.GasUsed)
		e.logger.Info("observed commit outcome",
			zap.String("hash", outcome.Hash),
			zap.Uint32("code", outcome.Code),
			zap.Int64("gas_wanted", outcome.GasWanted),
			zap.Int64("gas_used", outcome.GasUsed),
			zap.Int64("height", outcome.Height),
		)

		if !outcome.Succeeded() {
			e.logger.Warn("dispatch transaction failed on-chain",
				zap.Uint32("code", outcome.Code),
				zap.String("raw_log", outcome.RawLog),
				zap.String("info", outcome.Info),
			)
			return stats, nil
		}

		result, err := e.codec.DecodeResult(outcome.Data, e.alarm.MaxBatchSize)
		if err != nil {
			// The alarms were already delivered on-chain; only our view
			// of the count is lost. Concluding here lets the next round
			// re-query instead of guessing.
			e.logger.Error("failed to decode dispatch response",
				zap.Error(err), zap.String("hash", outcome.Hash))
			return stats, nil
		}

		count := result.DispatchedCount()
		stats.Dispatched += uint64(count)
		e.metrics.ObserveDispatched(count)
		e.logger.Info("dispatched alarms", zap.Uint32("count", count))

		// A full batch is evidence the queue was not exhausted; a
		// partial one means it is empty now.
		if count < e.alarm.MaxBatchSize {
			return stats, nil
		}
	}
}

func (e *Engine) queryRemaining(ctx context.Context) (bool, error) {
	started := time.Now()
	raw, err := e.querier.QuerySmart(ctx, e.alarm.ContractAddress, e.statusQuery)
	e.metrics.ObserveQuery(err, started)
	if err != nil {
		return false, fmt.Errorf("query alarms status: %w", err)
	}

	status, err := e.codec.DecodeStatus(raw)
	if err != nil {
		return false, fmt.Errorf("query alarms status: %w", err)
	}
	return status.RemainingForDispatch(), nil
}
