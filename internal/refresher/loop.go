package refresher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/internal/metrics"
	"github.com/gnosis/gp-gas-estimation/internal/publish"
)

// Refresher periodically re-estimates the gas price, keeps the last good
// value around for fast reads and publishes every fresh estimate.
type Refresher struct {
	logger    *zerolog.Logger
	estimator gasprice.Estimator
	prod      publish.Producer

	mu       sync.Mutex
	last     *gasprice.EstimatedGasPrice
	lastTime time.Time
}

func New(logger *zerolog.Logger, estimator gasprice.Estimator, prod publish.Producer) *Refresher {
	return &Refresher{
		logger:    logger,
		estimator: estimator,
		prod:      prod,
	}
}

// Tick performs one refresh.
func (r *Refresher) Tick(ctx context.Context) error {
	price, err := gasprice.Estimate(ctx, r.estimator)
	if err != nil {
		metrics.RefreshErrorsTotal.Inc()
		return fmt.Errorf("failed to refresh gas price: %w", err)
	}

	metrics.RefreshesTotal.Inc()
	metrics.EffectiveGasPriceWei.Set(price.EffectiveGasPrice())

	r.mu.Lock()
	r.last = &price
	r.lastTime = time.Now()
	r.mu.Unlock()

	r.prod.PriceUpdated(&publish.PriceMsg{
		Effective: price.EffectiveGasPrice(),
		Price:     price,
	})

	return nil
}

// Last returns the most recently refreshed price and when it was obtained.
// The boolean is false until the first successful refresh.
func (r *Refresher) Last() (gasprice.EstimatedGasPrice, time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return gasprice.EstimatedGasPrice{}, time.Time{}, false
	}
	return *r.last, r.lastTime, true
}

// Run ticks every interval until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Tick(ctx); err != nil {
				r.logger.Err(err).Msg("Failed to refresh gas price.")
			}
		}
	}
}
