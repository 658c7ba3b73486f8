package sources

import (
	"context"
	"time"

	"github.com/pharmindex/repurpose/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/pharmindex/repurpose/pkg/errors"
)

// meter records per-call metrics for one provider.  A nil meter is a no-op,
// so clients built without metrics skip all recording.
type meter struct {
	metrics *prometheus.AppMetrics
	source  string
}

func newMeter(metrics *prometheus.AppMetrics, source string) *meter {
	if metrics == nil {
		return nil
	}
	return &meter{metrics: metrics, source: source}
}

func (m *meter) observe(op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.metrics.SourceCallDuration.WithLabelValues(m.source, op).Observe(time.Since(started).Seconds())

	outcome := "ok"
	switch {
	case err == nil:
	case apperrors.IsCode(err, apperrors.ErrCodeSourceNoMatch):
		outcome = "no_match"
	default:
		outcome = "error"
		m.metrics.SourceFailuresTotal.WithLabelValues(m.source, apperrors.GetCode(err).String()).Inc()
	}
	m.metrics.SourceCallsTotal.WithLabelValues(m.source, op, outcome).Inc()
}

func (m *meter) retried(op string) {
	if m == nil {
		return
	}
	m.metrics.SourceRetriesTotal.WithLabelValues(m.source, op).Inc()
}

// call runs fn under the throttle and retry policy, recording the call count,
// duration, retry attempts and terminal failures for the operation.
func call(ctx context.Context, throttle *Throttle, policy Policy, mt *meter, op string, fn func(context.Context) error) error {
	if err := throttle.Wait(ctx); err != nil {
		return err
	}

	started := time.Now()
	attempt := 0
	err := policy.Do(ctx, func(attemptCtx context.Context) error {
		attempt++
		if attempt > 1 {
			mt.retried(op)
		}
		return fn(attemptCtx)
	})
	mt.observe(op, started, err)
	return err
}
