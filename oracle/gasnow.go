package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/internal/interpolate"
	"github.com/gnosis/gp-gas-estimation/transport"
)

// DefaultGasNowURL is the production GasNow endpoint.
const DefaultGasNowURL = "https://www.gasnow.org/api/v3/gas/price"

// Target inclusion times, in seconds, for the GasNow speed tiers.
const (
	gasNowRapidTime    = 15
	gasNowFastTime     = 60
	gasNowStandardTime = 300
	gasNowSlowTime     = 600
)

// GasNow reports prices in wei.
type gasNowResponse struct {
	Code int `json:"code"`
	Data struct {
		Rapid    float64 `json:"rapid"`
		Fast     float64 `json:"fast"`
		Standard float64 `json:"standard"`
		Slow     float64 `json:"slow"`
	} `json:"data"`
}

type gasNow struct {
	transport transport.Client
	url       string
}

// NewGasNow estimates legacy fees from the GasNow pending-pool feed,
// interpolating between its speed tiers to match the time budget.
func NewGasNow(t transport.Client, url string) gasprice.Estimator {
	return gasNow{transport: t, url: url}
}

func (g gasNow) EstimateWithLimits(ctx context.Context, _ float64, timeLimit time.Duration) (gasprice.EstimatedGasPrice, error) {
	var res gasNowResponse
	if err := g.transport.GetJSON(ctx, g.url, nil, &res); err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to fetch gas prices: %w", err)
	}

	if res.Code != 200 {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("code %d in response", res.Code)
	}

	points := []interpolate.Point{
		{X: gasNowRapidTime, Y: res.Data.Rapid},
		{X: gasNowFastTime, Y: res.Data.Fast},
		{X: gasNowStandardTime, Y: res.Data.Standard},
		{X: gasNowSlowTime, Y: res.Data.Slow},
	}

	return gasprice.EstimatedGasPrice{Legacy: interpolate.Linear(timeLimit.Seconds(), points)}, nil
}
