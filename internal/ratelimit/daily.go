// Package ratelimit bounds the number of accepted diagnosis requests per
// calendar day, evaluated in a fixed timezone.
package ratelimit

import (
	"sync"
	"time"

	"github.com/cobra893021/kajicon-go/internal/domain"
)

// Daily is the process-wide usage counter. The check-then-increment is a
// single critical section so two requests racing for the last slot can never
// both be accepted.
type Daily struct {
	limit int
	loc   *time.Location
	now   func() time.Time

	mu    sync.Mutex
	count int
	day   string
}

func NewDaily(limit int, loc *time.Location) *Daily {
	return NewDailyWithClock(limit, loc, time.Now)
}

// NewDailyWithClock injects the clock for deterministic rollover tests.
func NewDailyWithClock(limit int, loc *time.Location, now func() time.Time) *Daily {
	return &Daily{limit: limit, loc: loc, now: now}
}

// TryAcquire consumes one of today's slots and returns the running count, or
// domain.ErrDailyLimitReached without incrementing. The counter resets to
// zero the first time a call observes a new calendar date.
func (d *Daily) TryAcquire() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	today := d.now().In(d.loc).Format("2006-01-02")
	if today != d.day {
		d.count = 0
		d.day = today
	}
	if d.count >= d.limit {
		return d.count, domain.ErrDailyLimitReached
	}
	d.count++
	return d.count, nil
}
