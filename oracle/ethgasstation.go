package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/internal/interpolate"
	"github.com/gnosis/gp-gas-estimation/transport"
)

// DefaultEthGasStationURL is the production EthGasStation endpoint.
const DefaultEthGasStationURL = "https://ethgasstation.info/api/ethgasAPI.json"

// EthGasStation reports prices in tenths of gwei.
const deciGweiInWei = 1e8

// Expected inclusion times, in seconds, published for each price tier.
const (
	egsFastestTime = 30
	egsFastTime    = 60
	egsAverageTime = 300
	egsSafeLowTime = 1800
)

type ethGasStationResponse struct {
	Fastest float64 `json:"fastest"`
	Fast    float64 `json:"fast"`
	Average float64 `json:"average"`
	SafeLow float64 `json:"safeLow"`
}

type ethGasStation struct {
	transport transport.Client
	url       string
}

// NewEthGasStation estimates legacy fees from EthGasStation, interpolating
// between its price tiers to match the time budget.
func NewEthGasStation(t transport.Client, url string) gasprice.Estimator {
	return ethGasStation{transport: t, url: url}
}

func (e ethGasStation) EstimateWithLimits(ctx context.Context, _ float64, timeLimit time.Duration) (gasprice.EstimatedGasPrice, error) {
	var res ethGasStationResponse
	if err := e.transport.GetJSON(ctx, e.url, nil, &res); err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to fetch gas prices: %w", err)
	}

	points := []interpolate.Point{
		{X: egsFastestTime, Y: res.Fastest},
		{X: egsFastTime, Y: res.Fast},
		{X: egsAverageTime, Y: res.Average},
		{X: egsSafeLowTime, Y: res.SafeLow},
	}

	price := interpolate.Linear(timeLimit.Seconds(), points) * deciGweiInWei

	return gasprice.EstimatedGasPrice{Legacy: price}, nil
}
