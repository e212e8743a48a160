// Package gasprice models gas prices for Ethereum-style transactions and
// defines the estimation contract implemented by every price source.
//
// All amounts are denominated in wei per unit of gas and carried as
// float64, since oracles report fractional gwei values. Price values are
// immutable: every transformation returns a new value.
package gasprice

import "math"

// GasPrice1559 holds the components of an EIP-1559 gas price.
type GasPrice1559 struct {
	// BaseFeePerGas is the estimated base fee for the pending block. The
	// network sets it, not the sender, and it may change between estimation
	// and inclusion.
	BaseFeePerGas float64 `json:"baseFeePerGas"`

	// MaxFeePerGas is the most the sender will pay per unit of gas.
	MaxFeePerGas float64 `json:"maxFeePerGas"`

	// MaxPriorityFeePerGas incentivizes the block producer to include the
	// transaction during congestion.
	MaxPriorityFeePerGas float64 `json:"maxPriorityFeePerGas"`
}

// EstimatedGasPrice is the result of a single estimation. EIP1559 is nil
// when the source only supports the legacy fee model; in that case Legacy
// is the value to use. When EIP1559 is set, Legacy is informational only.
type EstimatedGasPrice struct {
	Legacy  float64       `json:"legacy"`
	EIP1559 *GasPrice1559 `json:"eip1559,omitempty"`
}

// EffectiveGasPrice returns the price the transaction is expected to pay
// per unit of gas under current conditions. For an EIP-1559 price this is
// min(MaxFeePerGas, MaxPriorityFeePerGas+BaseFeePerGas): the protocol never
// charges more than the fee cap, and charges less whenever the tip plus the
// base fee stays below it. The mined price can still differ from this
// estimate because BaseFeePerGas may move before inclusion.
//
// An unordered comparison (NaN on either side) is treated as equal, so
// MaxFeePerGas is returned rather than picking a side arbitrarily.
func (p EstimatedGasPrice) EffectiveGasPrice() float64 {
	if p.EIP1559 == nil {
		return p.Legacy
	}
	tipped := p.EIP1559.MaxPriorityFeePerGas + p.EIP1559.BaseFeePerGas
	if p.EIP1559.MaxFeePerGas > tipped {
		return tipped
	}
	return p.EIP1559.MaxFeePerGas
}

// Cap returns the most the sender is willing to pay per unit of gas,
// independent of what ends up being charged.
func (p EstimatedGasPrice) Cap() float64 {
	if p.EIP1559 != nil {
		return p.EIP1559.MaxFeePerGas
	}
	return p.Legacy
}

// Bump scales the sender-controlled components by factor, typically to
// resubmit a stuck transaction at a higher price. BaseFeePerGas is left
// alone: the network sets it and a resubmission should re-query it.
func (p EstimatedGasPrice) Bump(factor float64) EstimatedGasPrice {
	out := EstimatedGasPrice{Legacy: p.Legacy * factor}
	if p.EIP1559 != nil {
		out.EIP1559 = &GasPrice1559{
			BaseFeePerGas:        p.EIP1559.BaseFeePerGas,
			MaxFeePerGas:         p.EIP1559.MaxFeePerGas * factor,
			MaxPriorityFeePerGas: p.EIP1559.MaxPriorityFeePerGas * factor,
		}
	}
	return out
}

// Ceil rounds Legacy and MaxFeePerGas up to whole wei; on-chain amounts are
// integral even though they are floats here. BaseFeePerGas and
// MaxPriorityFeePerGas are left as-is: only the cap has to be exactly
// representable when the transaction is built.
func (p EstimatedGasPrice) Ceil() EstimatedGasPrice {
	out := EstimatedGasPrice{Legacy: math.Ceil(p.Legacy)}
	if p.EIP1559 != nil {
		out.EIP1559 = &GasPrice1559{
			BaseFeePerGas:        p.EIP1559.BaseFeePerGas,
			MaxFeePerGas:         math.Ceil(p.EIP1559.MaxFeePerGas),
			MaxPriorityFeePerGas: p.EIP1559.MaxPriorityFeePerGas,
		}
	}
	return out
}

// LimitCap lowers the price so that the cap does not exceed ceiling.
// MaxPriorityFeePerGas is re-clamped against the new MaxFeePerGas
// afterwards, keeping MaxPriorityFeePerGas <= MaxFeePerGas.
func (p EstimatedGasPrice) LimitCap(ceiling float64) EstimatedGasPrice {
	out := EstimatedGasPrice{Legacy: math.Min(p.Legacy, ceiling)}
	if p.EIP1559 != nil {
		maxFee := math.Min(p.EIP1559.MaxFeePerGas, ceiling)
		out.EIP1559 = &GasPrice1559{
			BaseFeePerGas:        p.EIP1559.BaseFeePerGas,
			MaxFeePerGas:         maxFee,
			MaxPriorityFeePerGas: math.Min(p.EIP1559.MaxPriorityFeePerGas, maxFee),
		}
	}
	return out
}
