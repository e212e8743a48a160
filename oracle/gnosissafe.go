package oracle

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/transport"
)

// DefaultGnosisSafeURL is the production Safe relay gas station endpoint.
const DefaultGnosisSafeURL = "https://safe-relay.gnosis.io/api/v1/gas-station/"

// The relay encodes wei amounts as decimal strings.
type gnosisSafeResponse struct {
	SafeLow  string `json:"safeLow"`
	Standard string `json:"standard"`
	Fast     string `json:"fast"`
}

type gnosisSafe struct {
	transport transport.Client
	url       string
}

// NewGnosisSafe estimates legacy fees from the Gnosis Safe relay gas
// station.
func NewGnosisSafe(t transport.Client, url string) gasprice.Estimator {
	return gnosisSafe{transport: t, url: url}
}

func (g gnosisSafe) EstimateWithLimits(ctx context.Context, _ float64, timeLimit time.Duration) (gasprice.EstimatedGasPrice, error) {
	var res gnosisSafeResponse
	if err := g.transport.GetJSON(ctx, g.url, nil, &res); err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to fetch gas prices: %w", err)
	}

	var tier string
	switch {
	case timeLimit <= time.Minute:
		tier = res.Fast
	case timeLimit <= 5*time.Minute:
		tier = res.Standard
	default:
		tier = res.SafeLow
	}

	price, err := strconv.ParseFloat(tier, 64)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to parse gas price %q: %w", tier, err)
	}

	return gasprice.EstimatedGasPrice{Legacy: price}, nil
}
