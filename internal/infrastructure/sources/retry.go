package sources

import (
	"context"
	"sync"
	"time"

	"github.com/pharmindex/repurpose/internal/config"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

// Policy controls how a provider call is retried.  Only transient failures
// (timeouts, rate limiting, 5xx-class unavailability) are retried; a provider
// that answered, even with "nothing found" or an unparseable body, is never
// asked again.
type Policy struct {
	MaxAttempts       int
	BaseDelay         time.Duration
	Multiplier        float64
	PerAttemptTimeout time.Duration
}

// PolicyFromConfig derives a Policy from a provider configuration block.
func PolicyFromConfig(cfg config.ProviderConfig) Policy {
	return Policy{
		MaxAttempts:       cfg.MaxAttempts,
		BaseDelay:         cfg.BaseRetryDelay,
		Multiplier:        2,
		PerAttemptTimeout: cfg.PerAttemptTimeout,
	}
}

// BestEffort returns a copy of p restricted to a single attempt, used for
// auxiliary lookups whose absence is acceptable.
func (p Policy) BestEffort() Policy {
	p.MaxAttempts = 1
	return p
}

// retryable reports whether err is worth another attempt.
func retryable(err error) bool {
	return apperrors.IsSourceUnavailable(err)
}

// Do runs fn under the policy: each attempt gets its own deadline, transient
// failures back off exponentially (BaseDelay, then ×Multiplier per attempt),
// and terminal failures return immediately.  When every attempt fails the
// last error is wrapped as source-unavailable so callers can fall back to the
// next provider instead of aborting.
func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}

	var lastErr error
	delay := p.BaseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		attemptCtx := ctx
		var cancel context.CancelFunc
		if p.PerAttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.PerAttemptTimeout)
		}
		err := fn(attemptCtx)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return apperrors.Wrap(ctx.Err(), apperrors.CodeTimeout, "retry aborted")
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * multiplier)
	}

	return apperrors.Wrap(lastErr, apperrors.ErrCodeSourceUnavailable, "retries exhausted")
}

// Throttle enforces a minimum interval between calls to a single provider.
// It is shared by every goroutine talking to that provider, so concurrent
// seeder workers collectively respect the provider's rate expectations.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewThrottle creates a Throttle with the given minimum call interval.
// A zero or negative interval disables throttling.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Wait blocks until the caller may issue the next call, or until ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return nil
	}

	t.mu.Lock()
	now := time.Now()
	wait := t.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	t.next = now.Add(wait + t.interval)
	t.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return apperrors.Wrap(ctx.Err(), apperrors.CodeTimeout, "throttle wait aborted")
	case <-time.After(wait):
		return nil
	}
}
