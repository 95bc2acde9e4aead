package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/metrics"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// DefaultSweepInterval is the wait between two expiration sweeps.
const DefaultSweepInterval = time.Hour

const tracerName = "github.com/jsamuelsen/carinsurance-service/internal/app"

// SweeperConfig contains the dependencies and cadence of the sweeper.
type SweeperConfig struct {
	Policies ports.PolicyRepository
	Clock    ports.Clock

	// Lock serializes sweeps across replicas. Nil disables locking.
	Lock ports.SweepLock

	// Metrics is optional.
	Metrics *metrics.Sweeper

	// Interval between sweeps. Defaults to DefaultSweepInterval.
	Interval time.Duration

	// TracerProvider defaults to the otel global.
	TracerProvider trace.TracerProvider

	Logger *slog.Logger
}

// ExpirationSweeper periodically flags policies whose end date has passed and
// reports each of them once with a WARN log entry.
//
// A flag is committed before its log entry is written, so a crash between the
// two loses the observation instead of repeating it.
type ExpirationSweeper struct {
	policies ports.PolicyRepository
	clock    ports.Clock
	lock     ports.SweepLock
	metrics  *metrics.Sweeper
	interval time.Duration
	tracer   trace.Tracer
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewExpirationSweeper creates a sweeper. It panics without a policy
// repository or a clock.
func NewExpirationSweeper(cfg SweeperConfig) *ExpirationSweeper {
	if cfg.Policies == nil || cfg.Clock == nil {
		panic("app: expiration sweeper requires a policy repository and a clock")
	}

	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSweepInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &ExpirationSweeper{
		policies: cfg.Policies,
		clock:    cfg.Clock,
		lock:     cfg.Lock,
		metrics:  cfg.Metrics,
		interval: cfg.Interval,
		tracer:   tp.Tracer(tracerName),
		logger:   logger.With(slog.String("component", "expiration_sweeper")),
	}
}

// Start launches the sweep loop in the background. Calling Start on a running
// sweeper does nothing.
func (s *ExpirationSweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		s.Run(ctx)
	}()
}

// Stop ends the loop and waits for it to exit or for ctx to be done.
// A sweep in progress is allowed to finish.
func (s *ExpirationSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for sweeper to stop: %w", ctx.Err())
	}
}

// Run sweeps immediately and then once per interval until ctx is canceled.
// Sweep failures are logged and the loop carries on.
func (s *ExpirationSweeper) Run(ctx context.Context) {
	s.logger.InfoContext(ctx, "expiration sweeper starting", slog.Duration("interval", s.interval))

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "expiration sweeper stopping")
			return
		case <-timer.C:
		}

		// select picks at random when both are ready; never start a sweep
		// once the loop has been canceled.
		if ctx.Err() != nil {
			s.logger.InfoContext(ctx, "expiration sweeper stopping")
			return
		}

		// The sweep itself must not be cut short by Stop.
		if _, err := s.SweepOnce(context.WithoutCancel(ctx)); err != nil {
			s.logger.ErrorContext(ctx, "expiration sweep failed", slog.Any("error", err))
		}

		timer.Reset(s.interval)
	}
}

// SweepOnce runs a single sweep and returns how many policies it flagged.
// A sweep skipped because another holder owns the lock flags nothing and
// returns no error.
func (s *ExpirationSweeper) SweepOnce(ctx context.Context) (n int, err error) {
	start := time.Now()
	result := metrics.SweepResultOK

	ctx, span := s.tracer.Start(ctx, "expiration_sweep")

	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("sweep panicked: %v", r)
		}

		if err != nil {
			result = metrics.SweepResultError
			span.RecordError(err)
			span.SetStatus(codes.Error, "sweep failed")
		}

		span.SetAttributes(
			attribute.String("sweep.result", result),
			attribute.Int("sweep.flagged", n),
		)
		span.End()

		s.metrics.ObserveRun(result, time.Since(start))
	}()

	n, skipped, err := s.sweep(ctx)
	if skipped {
		result = metrics.SweepResultSkipped
	}

	return n, err
}

func (s *ExpirationSweeper) sweep(ctx context.Context) (int, bool, error) {
	today := s.clock.Today()

	if s.lock != nil {
		release, acquired, err := s.lock.TryAcquire(ctx)
		if err != nil {
			return 0, false, fmt.Errorf("acquiring sweep lock: %w", err)
		}

		if !acquired {
			s.logger.DebugContext(ctx, "sweep lock held elsewhere, skipping")
			return 0, true, nil
		}

		defer func() {
			if err := release(ctx); err != nil {
				s.logger.WarnContext(ctx, "releasing sweep lock", slog.Any("error", err))
			}
		}()
	}

	candidates, err := s.policies.FindUnnotifiedExpiredBefore(ctx, today)
	if err != nil {
		return 0, false, fmt.Errorf("finding expired policies: %w", err)
	}

	expired := make([]domain.Policy, 0, len(candidates))

	for _, p := range candidates {
		if !p.ExpirationNotified && p.ExpiredBefore(today) {
			p.ExpirationNotified = true
			expired = append(expired, p)
		}
	}

	if len(expired) == 0 {
		s.logger.InfoContext(ctx, "no new expired policies found")
		return 0, false, nil
	}

	if err := s.policies.UpdateBatch(ctx, expired); err != nil {
		return 0, false, fmt.Errorf("flagging %d expired policies: %w", len(expired), err)
	}

	for _, p := range expired {
		s.logger.WarnContext(ctx, "policy expired",
			slog.Int64("policy_id", p.ID),
			slog.Int64("car_id", p.CarID),
			slog.String("end_date", p.EndDate.String()),
		)
	}

	s.metrics.AddNotified(len(expired))

	return len(expired), false, nil
}
