package insight

import (
	"time"

	"github.com/mindcastle/mindcastle/internal/journal"
)

// DefaultFreeDailyLimit caps templated generations per calendar day on the
// free tier.
const DefaultFreeDailyLimit = 3

// dayFormat keys the usage counter by local calendar day.
const dayFormat = "2006-01-02"

// Limiter enforces the daily generation quota. It holds the user and usage
// state explicitly rather than reading ambient globals, so tests can
// construct arbitrary states directly; callers load the state from the
// journal store and persist the updated counter back.
type Limiter struct {
	user  journal.UserState
	usage journal.Usage
	limit int
}

// NewLimiter builds a limiter from the given state. A non-positive limit
// falls back to DefaultFreeDailyLimit.
func NewLimiter(user journal.UserState, usage journal.Usage, freeDailyLimit int) *Limiter {
	if freeDailyLimit <= 0 {
		freeDailyLimit = DefaultFreeDailyLimit
	}
	return &Limiter{user: user, usage: usage, limit: freeDailyLimit}
}

// Allow reports whether one more generation is permitted now. The counter
// resets whenever the stored date differs from the current day; premium
// users are never limited.
func (l *Limiter) Allow(now time.Time) bool {
	if l.user.IsPremium {
		return true
	}
	l.rollover(now)
	return l.usage.Count < l.limit
}

// Record counts one generation against today's quota.
func (l *Limiter) Record(now time.Time) {
	l.rollover(now)
	l.usage.Count++
}

// Remaining returns how many generations are left today, or -1 when the
// user is premium (uncapped).
func (l *Limiter) Remaining(now time.Time) int {
	if l.user.IsPremium {
		return -1
	}
	l.rollover(now)
	if rem := l.limit - l.usage.Count; rem > 0 {
		return rem
	}
	return 0
}

// Usage returns the current counter state for persisting back to the store.
func (l *Limiter) Usage() journal.Usage {
	return l.usage
}

func (l *Limiter) rollover(now time.Time) {
	today := now.Format(dayFormat)
	if l.usage.Date != today {
		l.usage = journal.Usage{Date: today, Count: 0}
	}
}
