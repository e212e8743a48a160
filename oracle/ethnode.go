// Package oracle contains gas price sources, each wrapping one external
// estimation service behind the gasprice.Estimator contract.
package oracle

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gnosis/gp-gas-estimation/gasprice"
)

// EthClient is the subset of the go-ethereum client used for fee
// estimation.
type EthClient interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
}

type ethNode struct {
	client EthClient
}

// NewEthNode estimates fees directly from an Ethereum node. The fee cap is
// set to twice the pending base fee plus the suggested tip, so the price
// survives sustained base fee growth between estimation and inclusion.
func NewEthNode(client EthClient) gasprice.Estimator {
	return ethNode{client: client}
}

func (e ethNode) EstimateWithLimits(ctx context.Context, _ float64, _ time.Duration) (gasprice.EstimatedGasPrice, error) {
	h, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to retrieve latest block header: %w", err)
	}

	suggested, err := e.client.SuggestGasPrice(ctx)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to retrieve suggested gas price: %w", err)
	}
	legacy, _ := new(big.Float).SetInt(suggested).Float64()

	if h.BaseFee == nil {
		// Pre-London chain, no dynamic fees.
		return gasprice.EstimatedGasPrice{Legacy: legacy}, nil
	}

	gasTipCap, err := e.client.SuggestGasTipCap(ctx)
	if err != nil {
		return gasprice.EstimatedGasPrice{}, fmt.Errorf("failed to retrieve gas tip cap: %w", err)
	}

	tip, _ := new(big.Float).SetInt(gasTipCap).Float64()
	base, _ := new(big.Float).SetInt(h.BaseFee).Float64()

	return gasprice.EstimatedGasPrice{
		Legacy: legacy,
		EIP1559: &gasprice.GasPrice1559{
			BaseFeePerGas:        base,
			MaxFeePerGas:         2*base + tip,
			MaxPriorityFeePerGas: tip,
		},
	}, nil
}
