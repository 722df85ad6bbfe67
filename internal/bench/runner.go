package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ctxCheckEvery is how many rounds run between context checks.
const ctxCheckEvery = 256

// Runner times every selected contender on the workload.
type Runner struct {
	Rounds     int
	Capacity   int
	Contenders []Factory

	// Logger receives one entry per contender. Nil means no logging.
	Logger *zap.Logger

	// now is replaced in tests.
	now func() time.Time
}

// NewRunner builds a Runner from a validated config.
func NewRunner(cfg Config, logger *zap.Logger) (*Runner, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	factories, err := SelectFactories(cfg.Contenders)
	if err != nil {
		return nil, err
	}

	return &Runner{
		Rounds:     cfg.Rounds,
		Capacity:   cfg.Capacity,
		Contenders: factories,
		Logger:     logger,
	}, nil
}

// Run times each contender over Rounds rounds and returns the report.
//
// Every contender must produce the same sink (the sum of the sentinels it
// found); otherwise Run returns ErrWorkloadMismatch.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	now := r.now
	if now == nil {
		now = time.Now
	}

	report := Report{
		RunID:    uuid.NewString(),
		Started:  now().UTC(),
		Rounds:   r.Rounds,
		Capacity: r.Capacity,
		Baseline: BaselineName,
	}

	logger.Info("benchmark started",
		zap.String("run_id", report.RunID),
		zap.Int("rounds", r.Rounds),
		zap.Int("capacity", r.Capacity),
		zap.Int("contenders", len(r.Contenders)))

	var wantSink int64

	for i, factory := range r.Contenders {
		err := ctx.Err()
		if err != nil {
			return Report{}, fmt.Errorf("benchmark interrupted before %s: %w", factory.Name, err)
		}

		result, err := r.runContender(ctx, factory, now)
		if err != nil {
			return Report{}, err
		}

		if i == 0 {
			wantSink = result.Sink
		} else if result.Sink != wantSink {
			return Report{}, fmt.Errorf("%w: %s sink=%d, %s sink=%d",
				ErrWorkloadMismatch, factory.Name, result.Sink, r.Contenders[0].Name, wantSink)
		}

		logger.Info("contender finished",
			zap.String("contender", result.Name),
			zap.Duration("elapsed", result.Elapsed),
			zap.Int64("sink", result.Sink))

		report.Results = append(report.Results, result)
	}

	report.sortResults()

	return report, nil
}

func (r *Runner) runContender(ctx context.Context, factory Factory, now func() time.Time) (Result, error) {
	contender := factory.New(r.Capacity)

	var sink int64

	start := now()

	for round := range r.Rounds {
		if round%ctxCheckEvery == 0 {
			err := ctx.Err()
			if err != nil {
				return Result{}, fmt.Errorf("benchmark interrupted during %s: %w", factory.Name, err)
			}
		}

		found, err := RunRound(contender, r.Capacity)
		if err != nil {
			return Result{}, fmt.Errorf("%s round %d: %w", factory.Name, round, err)
		}

		sink += found
	}

	return Result{Name: factory.Name, Elapsed: now().Sub(start), Sink: sink}, nil
}
