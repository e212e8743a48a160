package metrics

import (
	"context"
	"time"

	"github.com/gnosis/gp-gas-estimation/gasprice"
)

type instrumented struct {
	name  string
	inner gasprice.Estimator
}

// Instrument wraps estimator so that its failures are counted under name in
// SourceFailuresTotal.
func Instrument(name string, estimator gasprice.Estimator) gasprice.Estimator {
	return instrumented{name: name, inner: estimator}
}

func (i instrumented) EstimateWithLimits(ctx context.Context, gasLimit float64, timeLimit time.Duration) (gasprice.EstimatedGasPrice, error) {
	price, err := i.inner.EstimateWithLimits(ctx, gasLimit, timeLimit)
	if err != nil {
		SourceFailuresTotal.WithLabelValues(i.name).Inc()
	}
	return price, err
}
