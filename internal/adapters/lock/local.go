// Package lock provides ports.SweepLock implementations.
package lock

import (
	"context"
	"sync"

	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// Local prevents overlapping sweeps within one process.
type Local struct {
	mu sync.Mutex
}

// NewLocal returns an unlocked in-process lock.
func NewLocal() *Local {
	return &Local{}
}

// TryAcquire implements ports.SweepLock.
func (l *Local) TryAcquire(context.Context) (ports.ReleaseFunc, bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}

	var once sync.Once

	release := func(context.Context) error {
		once.Do(l.mu.Unlock)
		return nil
	}

	return release, true, nil
}
