package ports

import "context"

// ReleaseFunc gives up a lock obtained from SweepLock.
type ReleaseFunc func(ctx context.Context) error

// SweepLock keeps expiration sweeps from overlapping, within one process or
// across replicas sharing a store.
type SweepLock interface {
	// TryAcquire attempts to take the lock without waiting.
	// acquired is false when another holder owns the lock; release is nil then.
	TryAcquire(ctx context.Context) (release ReleaseFunc, acquired bool, err error)
}
