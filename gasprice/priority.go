package gasprice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Priority tries an ordered list of estimators until one succeeds. Order
// expresses preference, not speed: a slower, more trusted source placed
// first is still preferred over a faster one behind it, as long as it
// answers within the remaining time budget. Sources are therefore attempted
// one at a time, never raced.
//
// Priority itself implements Estimator, so combinators can be nested or
// substituted anywhere a single source is expected.
type Priority struct {
	logger     *zerolog.Logger
	estimators []Estimator
}

// NewPriority composes estimators in decreasing order of preference.
func NewPriority(logger *zerolog.Logger, estimators ...Estimator) *Priority {
	return &Priority{logger: logger, estimators: estimators}
}

// EstimateWithLimits walks the sources in order, giving each one the full
// remaining time budget. The first success is returned untouched; callers
// apply any bumping or capping themselves. A failure or an expired slice
// moves the walk to the next source, and no source is retried within one
// call. When every source has failed, or the budget runs out first, the
// ordered per-source failures are returned as an *ExhaustedError; sources
// the budget never reached are recorded with a zero-allotment timeout.
//
// The slice deadline is propagated to the source through ctx, so an
// unresponsive source is cancelled rather than awaited past the budget.
func (p *Priority) EstimateWithLimits(ctx context.Context, gasLimit float64, timeLimit time.Duration) (EstimatedGasPrice, error) {
	deadline := time.Now().Add(timeLimit)
	reasons := make([]error, 0, len(p.estimators))

	for i, estimator := range p.estimators {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			for range p.estimators[i:] {
				reasons = append(reasons, &TimeoutError{})
			}
			break
		}

		attemptCtx, cancel := context.WithTimeout(ctx, remaining)
		price, err := estimator.EstimateWithLimits(attemptCtx, gasLimit, remaining)
		cancel()

		if err == nil {
			return price, nil
		}

		if attemptCtx.Err() == context.DeadlineExceeded {
			err = &TimeoutError{Allotted: remaining}
		}
		p.logger.Warn().Err(err).Int("source", i).Msg("Gas price source failed, trying next.")
		reasons = append(reasons, err)
	}

	return EstimatedGasPrice{}, &ExhaustedError{Reasons: reasons}
}
