package gasprice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveGasPriceLegacy(t *testing.T) {
	p := EstimatedGasPrice{Legacy: 42}
	assert.Equal(t, 42.0, p.EffectiveGasPrice())
	assert.Equal(t, 42.0, p.Cap())
}

func TestEffectiveGasPriceDynamic(t *testing.T) {
	p := EstimatedGasPrice{
		Legacy: 5,
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        20,
			MaxFeePerGas:         100,
			MaxPriorityFeePerGas: 2,
		},
	}
	assert.Equal(t, 22.0, p.EffectiveGasPrice())
	assert.Equal(t, 100.0, p.Cap())

	p.EIP1559.MaxFeePerGas = 21
	assert.Equal(t, 21.0, p.EffectiveGasPrice())
}

func TestEffectiveGasPriceNaN(t *testing.T) {
	// An unordered comparison falls back to the fee cap.
	p := EstimatedGasPrice{
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        math.NaN(),
			MaxFeePerGas:         100,
			MaxPriorityFeePerGas: 2,
		},
	}
	assert.Equal(t, 100.0, p.EffectiveGasPrice())
}

func TestBump(t *testing.T) {
	p := EstimatedGasPrice{
		Legacy: 10,
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        5,
			MaxFeePerGas:         50,
			MaxPriorityFeePerGas: 2,
		},
	}

	assert.Equal(t, p, p.Bump(1.0))

	bumped := p.Bump(2.0)
	assert.Equal(t, 20.0, bumped.Legacy)
	assert.Equal(t, 5.0, bumped.EIP1559.BaseFeePerGas)
	assert.Equal(t, 100.0, bumped.EIP1559.MaxFeePerGas)
	assert.Equal(t, 4.0, bumped.EIP1559.MaxPriorityFeePerGas)

	// The original value is untouched.
	assert.Equal(t, 10.0, p.Legacy)
	assert.Equal(t, 50.0, p.EIP1559.MaxFeePerGas)
}

func TestBumpLegacyOnly(t *testing.T) {
	p := EstimatedGasPrice{Legacy: 10}
	assert.Equal(t, EstimatedGasPrice{Legacy: 20}, p.Bump(2.0))
}

func TestCeil(t *testing.T) {
	p := EstimatedGasPrice{
		Legacy: 10.3,
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        1.2,
			MaxFeePerGas:         10.1,
			MaxPriorityFeePerGas: 2.7,
		},
	}

	ceiled := p.Ceil()
	assert.Equal(t, 11.0, ceiled.Legacy)
	assert.Equal(t, 11.0, ceiled.EIP1559.MaxFeePerGas)
	// Base fee and priority fee are not rounded.
	assert.Equal(t, 1.2, ceiled.EIP1559.BaseFeePerGas)
	assert.Equal(t, 2.7, ceiled.EIP1559.MaxPriorityFeePerGas)
}

func TestCeilIdempotent(t *testing.T) {
	p := EstimatedGasPrice{
		Legacy: 10.3,
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        1.2,
			MaxFeePerGas:         10.1,
			MaxPriorityFeePerGas: 2.7,
		},
	}
	assert.Equal(t, p.Ceil(), p.Ceil().Ceil())
}

func TestLimitCap(t *testing.T) {
	p := EstimatedGasPrice{
		Legacy: 100,
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        20,
			MaxFeePerGas:         90,
			MaxPriorityFeePerGas: 60,
		},
	}

	capped := p.LimitCap(50)
	assert.Equal(t, 50.0, capped.Legacy)
	assert.Equal(t, 50.0, capped.EIP1559.MaxFeePerGas)
	// The priority fee is re-clamped to the new cap.
	assert.Equal(t, 50.0, capped.EIP1559.MaxPriorityFeePerGas)
	assert.Equal(t, 20.0, capped.EIP1559.BaseFeePerGas)

	// A ceiling above the current cap changes nothing.
	assert.Equal(t, p, p.LimitCap(1000))
}

func TestTransformSequenceKeepsInvariant(t *testing.T) {
	p := EstimatedGasPrice{
		Legacy: 30,
		EIP1559: &GasPrice1559{
			BaseFeePerGas:        10.4,
			MaxFeePerGas:         80.9,
			MaxPriorityFeePerGas: 9.2,
		},
	}

	sequences := [][]func(EstimatedGasPrice) EstimatedGasPrice{
		{
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.Bump(2.5) },
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.LimitCap(95) },
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.Ceil() },
		},
		{
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.LimitCap(11) },
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.Bump(1.125) },
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.LimitCap(12) },
		},
		{
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.Ceil() },
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.Bump(3.3) },
			func(p EstimatedGasPrice) EstimatedGasPrice { return p.LimitCap(0) },
		},
	}

	for _, seq := range sequences {
		out := p
		for _, transform := range seq {
			out = transform(out)
		}
		assert.LessOrEqual(t, out.EIP1559.MaxPriorityFeePerGas, out.EIP1559.MaxFeePerGas)
	}
}
