package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/transport"
)

// DefaultBlocknativeURL is the production block prices endpoint.
const DefaultBlocknativeURL = "https://api.blocknative.com/gasprices/blockprices"

// All Blocknative fees are in gwei = 10 ^ 9 wei.
const gweiInWei = 1e9

type blocknativeResponse struct {
	BlockPrices []struct {
		BaseFeePerGas   float64 `json:"baseFeePerGas"`
		EstimatedPrices []struct {
			Confidence           float64 `json:"confidence"`
			Price                float64 `json:"price"`
			MaxPriorityFeePerGas float64 `json:"maxPriorityFeePerGas"`
			MaxFeePerGas         float64 `json:"maxFeePerGas"`
		} `json:"estimatedPrices"`
	} `json:"blockPrices"`
}

type blocknative struct {
	transport transport.Client
	url       string
	apiKey    string
}

// NewBlocknative estimates fees from the Blocknative gas platform. The API
// key is sent in the Authorization header.
func NewBlocknative(t transport.Client, url, apiKey string) gasprice.Estimator {
	return blocknative{transport: t, url: url, apiKey: apiKey}
}

// requiredConfidence maps the time budget to the lowest acceptable
// inclusion confidence. A tight budget demands a near-certain price; a
// generous one can settle for a cheaper, less certain estimate.
func requiredConfidence(timeLimit time.Duration) float64 {
	switch {
	case timeLimit <= 30*time.Second:
		return 99
	case timeLimit <= time.Minute:
		return 90
	default:
		return 80
	}
}

func (b blocknative) EstimateWithLimits(ctx context.Context, _ float64, timeLimit time.Duration) (gasprice.EstimatedGasPrice, error) {
	header := http.Header{}
	header.Set("Authorization", b.apiKey)

	var res blocknativeResponse
	if err := b.transport.GetJSON(ctx, b.url, header, &res); err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to fetch block prices: %w", err)
	}

	if len(res.BlockPrices) == 0 || len(res.BlockPrices[0].EstimatedPrices) == 0 {
		return gasprice.EstimatedGasPrice{}, errors.New("no block prices in response")
	}

	block := res.BlockPrices[0]

	// Estimates come sorted by descending confidence; take the cheapest one
	// still meeting the required confidence.
	required := requiredConfidence(timeLimit)
	chosen := block.EstimatedPrices[0]
	for _, est := range block.EstimatedPrices[1:] {
		if est.Confidence < required {
			break
		}
		chosen = est
	}

	return gasprice.EstimatedGasPrice{
		Legacy: chosen.Price * gweiInWei,
		EIP1559: &gasprice.GasPrice1559{
			BaseFeePerGas:        block.BaseFeePerGas * gweiInWei,
			MaxFeePerGas:         chosen.MaxFeePerGas * gweiInWei,
			MaxPriorityFeePerGas: chosen.MaxPriorityFeePerGas * gweiInWei,
		},
	}, nil
}
