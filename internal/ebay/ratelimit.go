package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/droplist/internal/metrics"
)

// ErrDailyLimitReached is returned when the daily API call budget is spent.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// RateLimiter paces Sell API calls with a token bucket and caps them with a
// rolling 24-hour budget shared by every seller the process serves.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst and at most maxDaily calls per window.
func NewRateLimiter(perSecond float64, burst int, maxDaily int64, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait reserves one call from the daily budget and blocks until the token
// bucket admits it or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	used, err := r.reserve()
	if err != nil {
		metrics.EbayDailyLimitHits.Inc()
		return err
	}
	metrics.EbayDailyUsage.Set(float64(used))

	if err := r.limiter.Wait(ctx); err != nil {
		r.release()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

func (r *RateLimiter) reserve() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(24 * time.Hour)
	}
	if r.used >= r.maxDaily {
		return r.used, fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	return r.used, nil
}

func (r *RateLimiter) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
}

// Quota is a point-in-time view of the daily budget.
type Quota struct {
	Limit     int64
	Used      int64
	Remaining int64
	ResetAt   time.Time
}

// Quota returns the current budget state.
func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Quota{
		Limit:     r.maxDaily,
		Used:      r.used,
		Remaining: max(r.maxDaily-r.used, 0),
		ResetAt:   r.resetAt,
	}
}
