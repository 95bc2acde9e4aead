// Package clock provides ports.Clock implementations.
package clock

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone database for minimal container images

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// System reads the wall clock and converts it to a calendar date in a fixed
// location. All "today" comparisons in the service go through one System so
// the date boundary is consistent.
type System struct {
	loc *time.Location
	now func() time.Time
}

// NewSystem returns a clock for the named IANA time zone.
// An empty name means UTC.
func NewSystem(timezone string) (*System, error) {
	if timezone == "" {
		return &System{loc: time.UTC, now: time.Now}, nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", timezone, err)
	}

	return &System{loc: loc, now: time.Now}, nil
}

// Today returns the current date in the clock's location.
func (s *System) Today() domain.Date {
	return domain.DateOf(s.now().In(s.loc))
}

// Location returns the time zone dates are evaluated in.
func (s *System) Location() *time.Location {
	return s.loc
}

// Fixed is a clock that always reports the same date until changed.
type Fixed struct {
	mu    sync.RWMutex
	today domain.Date
}

// NewFixed returns a clock frozen at today.
func NewFixed(today domain.Date) *Fixed {
	return &Fixed{today: today}
}

// Today returns the frozen date.
func (f *Fixed) Today() domain.Date {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.today
}

// Set moves the clock to today.
func (f *Fixed) Set(today domain.Date) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.today = today
}

// Advance moves the clock forward by days.
func (f *Fixed) Advance(days int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.today = f.today.AddDays(days)
}
