package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/alarms-dispatcher/internal/clock"
)

const (
	// DefaultPollPeriod spaces rounds when the configuration does not
	// override it.
	DefaultPollPeriod = time.Minute

	// DefaultMaxConsecutiveErrors is how many rounds may fail back to
	// back before the scheduler gives up.
	DefaultMaxConsecutiveErrors = 5
)

// Scheduler runs every engine once per round, sequentially, and sleeps
// the poll period between rounds. A budget of consecutive failed
// rounds bounds how long it tolerates a broken node or contract; any
// fully successful round restores the budget.
type Scheduler struct {
	logger               *zap.Logger
	engines              []EnginePass
	pollPeriod           time.Duration
	maxConsecutiveErrors int
	sleep                func(ctx context.Context, d time.Duration) error
}

// NewScheduler constructs a scheduler over the given engines.
// Non-positive pollPeriod and maxConsecutiveErrors fall back to the
// defaults.
func NewScheduler(
	engines []EnginePass,
	pollPeriod time.Duration,
	maxConsecutiveErrors int,
	logger *zap.Logger,
) (*Scheduler, error) {
	if len(engines) == 0 {
		return nil, errors.New("at least one engine is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if pollPeriod <= 0 {
		pollPeriod = DefaultPollPeriod
	}
	if maxConsecutiveErrors <= 0 {
		maxConsecutiveErrors = DefaultMaxConsecutiveErrors
	}

	return &Scheduler{
		logger:               logger,
		engines:              engines,
		pollPeriod:           pollPeriod,
		maxConsecutiveErrors: maxConsecutiveErrors,
		sleep:                clock.SleepWithContext,
	}, nil
}

// Run drives rounds until the context is canceled or the consecutive
// error budget is exhausted. Context cancellation surfaces as the
// context's error.
func (s *Scheduler) Run(ctx context.Context) error {
	consecutiveErrors := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.round(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			consecutiveErrors++
			s.logger.Error("dispatch round failed",
				zap.Error(err),
				zap.Int("consecutive_errors", consecutiveErrors),
				zap.Int("budget", s.maxConsecutiveErrors),
			)
			if consecutiveErrors >= s.maxConsecutiveErrors {
				return fmt.Errorf("%d consecutive dispatch rounds failed: %w", consecutiveErrors, err)
			}
		} else {
			consecutiveErrors = 0
		}

		if err := s.sleep(ctx, s.pollPeriod); err != nil {
			return err
		}
	}
}

func (s *Scheduler) round(ctx context.Context) error {
	for _, engine := range s.engines {
		stats, err := engine.RunPass(ctx)
		if err != nil {
			return fmt.Errorf("%s alarms: %w", engine.AlarmType(), err)
		}
		s.logger.Info("alarm queue drained",
			zap.String("alarm_type", engine.AlarmType()),
			zap.Int("broadcasts", stats.Broadcasts),
			zap.Uint64("dispatched", stats.Dispatched),
		)
	}
	return nil
}
