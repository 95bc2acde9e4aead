package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/mocks"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/clock"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/metrics"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// syncBuffer is a bytes.Buffer safe for concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// entries decodes the JSON log lines written so far.
func (b *syncBuffer) entries(t *testing.T) []map[string]any {
	t.Helper()

	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any

	dec := json.NewDecoder(bytes.NewReader(b.buf.Bytes()))
	for dec.More() {
		var e map[string]any
		require.NoError(t, dec.Decode(&e))
		out = append(out, e)
	}

	return out
}

func warnings(t *testing.T, logs *syncBuffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, e := range logs.entries(t) {
		if e["level"] == "WARN" && e["msg"] == "policy expired" {
			out = append(out, e)
		}
	}

	return out
}

type sweeperFixture struct {
	sweeper  *ExpirationSweeper
	policies *mocks.MockPolicyRepository
	lock     *mocks.MockSweepLock
	clock    *clock.Fixed
	metrics  *metrics.Sweeper
	spans    *tracetest.SpanRecorder
	logs     *syncBuffer
}

func newSweeperFixture(t *testing.T, withLock bool, interval time.Duration) *sweeperFixture {
	t.Helper()

	f := &sweeperFixture{
		policies: mocks.NewMockPolicyRepository(t),
		clock:    clock.NewFixed(domain.NewDate(2025, 1, 1)),
		metrics:  metrics.NewSweeper(prometheus.NewRegistry()),
		spans:    tracetest.NewSpanRecorder(),
		logs:     &syncBuffer{},
	}

	cfg := SweeperConfig{
		Policies: f.policies,
		Clock:    f.clock,
		Metrics:  f.metrics,
		Interval: interval,
		Logger:   slog.New(slog.NewJSONHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),

		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(f.spans)),
	}

	if withLock {
		f.lock = mocks.NewMockSweepLock(t)
		cfg.Lock = f.lock
	}

	f.sweeper = NewExpirationSweeper(cfg)

	return f
}

func TestNewExpirationSweeper_Defaults(t *testing.T) {
	s := NewExpirationSweeper(SweeperConfig{
		Policies: mocks.NewMockPolicyRepository(t),
		Clock:    clock.NewFixed(domain.NewDate(2025, 1, 1)),
	})

	assert.Equal(t, DefaultSweepInterval, s.interval)

	assert.Panics(t, func() { NewExpirationSweeper(SweeperConfig{}) })
}

func TestSweepOnce_FlagsAndReportsExpiredPolicies(t *testing.T) {
	f := newSweeperFixture(t, false, 0)
	today := f.clock.Today()

	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, today).Return([]domain.Policy{
		{ID: 1, CarID: 10, Provider: "A", StartDate: domain.NewDate(2024, 1, 1), EndDate: domain.NewDate(2024, 12, 31)},
		{ID: 2, CarID: 11, Provider: "B", StartDate: domain.NewDate(2024, 1, 1), EndDate: domain.NewDate(2024, 6, 30)},
	}, nil)
	f.policies.EXPECT().UpdateBatch(mock.Anything, mock.MatchedBy(func(ps []domain.Policy) bool {
		for _, p := range ps {
			if !p.ExpirationNotified {
				return false
			}
		}

		return len(ps) == 2
	})).Return(nil)

	n, err := f.sweeper.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	warns := warnings(t, f.logs)
	require.Len(t, warns, 2)
	assert.InDelta(t, 1, warns[0]["policy_id"], 0)
	assert.InDelta(t, 10, warns[0]["car_id"], 0)
	assert.Equal(t, "2024-12-31", warns[0]["end_date"])

	assert.InDelta(t, 2, testutil.ToFloat64(f.metrics.PoliciesNotified), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.Runs.WithLabelValues(metrics.SweepResultOK)), 0)

	spans := f.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "expiration_sweep", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("sweep.flagged", 2))
	assert.Contains(t, spans[0].Attributes(), attribute.String("sweep.result", metrics.SweepResultOK))
}

func TestSweepOnce_PolicyEndingTodayIsNotExpired(t *testing.T) {
	f := newSweeperFixture(t, false, 0)
	today := f.clock.Today()

	// A store that ignores the strict bound must not cause an early report.
	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, today).Return([]domain.Policy{
		{ID: 3, CarID: 12, EndDate: today},
	}, nil)

	n, err := f.sweeper.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, warnings(t, f.logs))
}

func TestSweepOnce_NothingToDoSkipsWrite(t *testing.T) {
	f := newSweeperFixture(t, false, 0)
	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).Return(nil, nil)

	n, err := f.sweeper.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	f.policies.AssertNotCalled(t, "UpdateBatch", mock.Anything, mock.Anything)

	var sawInfo bool

	for _, e := range f.logs.entries(t) {
		if e["msg"] == "no new expired policies found" {
			sawInfo = true
		}
	}

	assert.True(t, sawInfo)
}

func TestSweepOnce_UpdateFailureReportsNothing(t *testing.T) {
	f := newSweeperFixture(t, false, 0)
	boom := errors.New("tx aborted")

	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).Return([]domain.Policy{
		{ID: 1, CarID: 10, EndDate: domain.NewDate(2024, 12, 31)},
	}, nil)
	f.policies.EXPECT().UpdateBatch(mock.Anything, mock.Anything).Return(boom)

	n, err := f.sweeper.SweepOnce(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.Empty(t, warnings(t, f.logs))
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.Runs.WithLabelValues(metrics.SweepResultError)), 0)
}

func TestSweepOnce_SkipsWhenLockHeld(t *testing.T) {
	f := newSweeperFixture(t, true, 0)
	f.lock.EXPECT().TryAcquire(mock.Anything).Return(nil, false, nil)

	n, err := f.sweeper.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	f.policies.AssertNotCalled(t, "FindUnnotifiedExpiredBefore", mock.Anything, mock.Anything)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.Runs.WithLabelValues(metrics.SweepResultSkipped)), 0)
}

func TestSweepOnce_ReleasesLock(t *testing.T) {
	f := newSweeperFixture(t, true, 0)

	var released atomic.Bool

	f.lock.EXPECT().TryAcquire(mock.Anything).Return(func(context.Context) error {
		released.Store(true)
		return nil
	}, true, nil)
	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).Return(nil, nil)

	_, err := f.sweeper.SweepOnce(context.Background())

	require.NoError(t, err)
	assert.True(t, released.Load())
}

func TestSweepOnce_LockErrorIsReturned(t *testing.T) {
	f := newSweeperFixture(t, true, 0)
	f.lock.EXPECT().TryAcquire(mock.Anything).Return(nil, false, errors.New("redis down"))

	_, err := f.sweeper.SweepOnce(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring sweep lock")
}

func TestSweepOnce_RecoversPanic(t *testing.T) {
	f := newSweeperFixture(t, false, 0)
	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Date) ([]domain.Policy, error) {
			panic("driver bug")
		})

	n, err := f.sweeper.SweepOnce(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver bug")
	assert.Zero(t, n)

	spans := f.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

// fakePolicies is an in-memory policy store for loop tests.
type fakePolicies struct {
	mu       sync.Mutex
	policies []domain.Policy
	sweeps   atomic.Int32
	failNext atomic.Bool
}

func (f *fakePolicies) FindByCarID(context.Context, int64) ([]domain.Policy, error) {
	return nil, nil
}

func (f *fakePolicies) FindUnnotifiedExpiredBefore(_ context.Context, date domain.Date) ([]domain.Policy, error) {
	f.sweeps.Add(1)

	if f.failNext.CompareAndSwap(true, false) {
		return nil, errors.New("transient")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Policy

	for _, p := range f.policies {
		if !p.ExpirationNotified && p.EndDate.Before(date) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (f *fakePolicies) UpdateBatch(_ context.Context, updated []domain.Policy) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range updated {
		for i := range f.policies {
			if f.policies[i].ID == u.ID {
				f.policies[i].ExpirationNotified = u.ExpirationNotified
			}
		}
	}

	return nil
}

var _ ports.PolicyRepository = (*fakePolicies)(nil)

func TestExpirationSweeper_CanceledLoopStartsNoSweep(t *testing.T) {
	f := newSweeperFixture(t, false, time.Hour)

	var sweeps atomic.Int32
	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).
		Run(func(context.Context, domain.Date) { sweeps.Add(1) }).
		Return(nil, nil).
		Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first timer fires at once, so both select cases are ready.
	for range 200 {
		f.sweeper.Run(ctx)
	}

	assert.Zero(t, sweeps.Load(), "no sweep may start after cancellation")
	assert.Empty(t, f.spans.Ended())
}

func TestExpirationSweeper_LoopReportsEachPolicyOnce(t *testing.T) {
	store := &fakePolicies{policies: []domain.Policy{
		{ID: 1, CarID: 10, EndDate: domain.NewDate(2024, 12, 31)},
		{ID: 2, CarID: 11, EndDate: domain.NewDate(2025, 6, 30)},
	}}
	store.failNext.Store(true)

	logs := &syncBuffer{}
	s := NewExpirationSweeper(SweeperConfig{
		Policies: store,
		Clock:    clock.NewFixed(domain.NewDate(2025, 1, 1)),
		Interval: 5 * time.Millisecond,
		Logger:   slog.New(slog.NewJSONHandler(logs, nil)),
	})

	s.Start()
	s.Start() // second call is a no-op

	require.Eventually(t, func() bool { return store.sweeps.Load() >= 4 }, 2*time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx), "stopping twice is harmless")

	warns := warnings(t, logs)
	require.Len(t, warns, 1, "the first sweep failed, later ones report policy 1 exactly once")
	assert.InDelta(t, 1, warns[0]["policy_id"], 0)

	var sawError bool

	for _, e := range logs.entries(t) {
		if e["level"] == "ERROR" && e["msg"] == "expiration sweep failed" {
			sawError = true
		}
	}

	assert.True(t, sawError)

	settled := store.sweeps.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, store.sweeps.Load(), "no sweeps after Stop")
}

func TestExpirationSweeper_StopDoesNotInterruptSweep(t *testing.T) {
	f := newSweeperFixture(t, false, time.Hour)

	entered := make(chan struct{})
	proceed := make(chan struct{})

	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Date) ([]domain.Policy, error) {
			close(entered)
			<-proceed

			return []domain.Policy{{ID: 1, CarID: 10, EndDate: domain.NewDate(2024, 12, 31)}}, ctx.Err()
		}).Once()
	f.policies.EXPECT().UpdateBatch(mock.Anything, mock.Anything).Return(nil).Once()

	f.sweeper.Start()
	<-entered

	stopped := make(chan error, 1)

	go func() { stopped <- f.sweeper.Stop(context.Background()) }()

	close(proceed)

	require.NoError(t, <-stopped)
	assert.Len(t, warnings(t, f.logs), 1)
}

func TestExpirationSweeper_StopHonoursDeadline(t *testing.T) {
	f := newSweeperFixture(t, false, time.Hour)

	entered := make(chan struct{})
	proceed := make(chan struct{})

	f.policies.EXPECT().FindUnnotifiedExpiredBefore(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Date) ([]domain.Policy, error) {
			close(entered)
			<-proceed

			return nil, nil
		}).Once()

	f.sweeper.Start()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := f.sweeper.Stop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(proceed)
}
