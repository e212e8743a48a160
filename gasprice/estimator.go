package gasprice

import (
	"context"
	"time"
)

const (
	// DefaultGasLimit is the gas used by a plain value transfer.
	DefaultGasLimit = 21000.0

	// DefaultTimeLimit is a generous window within which the transaction
	// should be mined.
	DefaultTimeLimit = 30 * time.Second
)

//go:generate mockgen -source estimator.go -destination ../internal/mocks/estimator.go -package mocks

// Estimator produces a gas price expected to get a transaction using
// gasLimit gas mined within timeLimit. Implementations must be safe for
// concurrent use and must honor cancellation and deadlines carried by ctx.
type Estimator interface {
	EstimateWithLimits(ctx context.Context, gasLimit float64, timeLimit time.Duration) (EstimatedGasPrice, error)
}

// Estimate asks e for a price using DefaultGasLimit and DefaultTimeLimit,
// suitable for a simple transfer that should be mined quickly.
func Estimate(ctx context.Context, e Estimator) (EstimatedGasPrice, error) {
	return e.EstimateWithLimits(ctx, DefaultGasLimit, DefaultTimeLimit)
}
