package sources

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/pharmindex/repurpose/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{
		MaxAttempts:       attempts,
		BaseDelay:         time.Millisecond,
		Multiplier:        2,
		PerAttemptTimeout: time.Second,
	}
}

func TestPolicyDo_SucceedsFirstTry(t *testing.T) {
	t.Parallel()

	calls := 0
	err := fastPolicy(5).Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPolicyDo_RetriesTransientThenSucceeds(t *testing.T) {
	t.Parallel()

	calls := 0
	err := fastPolicy(5).Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return apperrors.SourceUnavailable("503")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicyDo_TerminalErrorStopsImmediately(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
	}{
		{"no match", apperrors.SourceNoMatch("404")},
		{"parse error", apperrors.SourceParse("bad json")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			err := fastPolicy(5).Do(context.Background(), func(context.Context) error {
				calls++
				return tc.err
			})
			assert.Equal(t, 1, calls, "terminal errors must not be retried")
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestPolicyDo_ExhaustionWrapsAsUnavailable(t *testing.T) {
	t.Parallel()

	calls := 0
	err := fastPolicy(3).Do(context.Background(), func(context.Context) error {
		calls++
		return apperrors.New(apperrors.ErrCodeSourceRateLimited, "429")
	})
	assert.Equal(t, 3, calls)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeSourceUnavailable, apperrors.GetCode(err))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSourceRateLimited),
		"the last attempt's error must remain in the chain")
}

func TestPolicyDo_SingleAttemptNeverRetries(t *testing.T) {
	t.Parallel()

	calls := 0
	err := fastPolicy(1).Do(context.Background(), func(context.Context) error {
		calls++
		return apperrors.SourceUnavailable("down")
	})
	assert.Equal(t, 1, calls)
	assert.True(t, apperrors.IsSourceUnavailable(err))
}

func TestPolicyDo_ZeroAttemptsTreatedAsOne(t *testing.T) {
	t.Parallel()

	calls := 0
	_ = Policy{}.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	assert.Equal(t, 1, calls)
}

func TestPolicyDo_CancelledContextAbortsBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{MaxAttempts: 5, BaseDelay: time.Minute, Multiplier: 2}

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- p.Do(ctx, func(context.Context) error {
			calls++
			return apperrors.SourceUnavailable("down")
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.Equal(t, 1, calls)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeTimeout))
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after context cancellation")
	}
}

func TestBestEffort_CopiesPolicyWithOneAttempt(t *testing.T) {
	t.Parallel()

	p := fastPolicy(5)
	be := p.BestEffort()
	assert.Equal(t, 1, be.MaxAttempts)
	assert.Equal(t, 5, p.MaxAttempts, "original policy must be unchanged")
	assert.Equal(t, p.PerAttemptTimeout, be.PerAttemptTimeout)
}

func TestThrottle_EnforcesMinimumInterval(t *testing.T) {
	t.Parallel()

	interval := 30 * time.Millisecond
	th := NewThrottle(interval)

	start := time.Now()
	require.NoError(t, th.Wait(context.Background()))
	require.NoError(t, th.Wait(context.Background()))
	require.NoError(t, th.Wait(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 2*interval,
		"three calls must span at least two intervals")
}

func TestThrottle_ZeroIntervalIsPassthrough(t *testing.T) {
	t.Parallel()

	th := NewThrottle(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, th.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestThrottle_CancelledContext(t *testing.T) {
	t.Parallel()

	th := NewThrottle(time.Minute)
	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := th.Wait(ctx)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeTimeout))
}

func TestThrottle_NilIsSafe(t *testing.T) {
	t.Parallel()

	var th *Throttle
	assert.NoError(t, th.Wait(context.Background()))
}
