package gasprice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/internal/mocks"
)

func TestPriorityFirstSuccessWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()

	want := gasprice.EstimatedGasPrice{Legacy: 123}

	a := mocks.NewMockEstimator(ctrl)
	a.EXPECT().EstimateWithLimits(gomock.Any(), 21000.0, gomock.Any()).Return(gasprice.EstimatedGasPrice{}, errors.New("connection refused"))

	b := mocks.NewMockEstimator(ctrl)
	b.EXPECT().EstimateWithLimits(gomock.Any(), 21000.0, gomock.Any()).Return(want, nil)

	// Must not be queried once b has answered.
	c := mocks.NewMockEstimator(ctrl)

	p := gasprice.NewPriority(&logger, a, b, c)

	got, err := p.EstimateWithLimits(context.Background(), 21000, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPriorityAllFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()

	errA := errors.New("status code 502 from request")
	errB := errors.New("no block prices in response")

	a := mocks.NewMockEstimator(ctrl)
	a.EXPECT().EstimateWithLimits(gomock.Any(), gomock.Any(), gomock.Any()).Return(gasprice.EstimatedGasPrice{}, errA)

	b := mocks.NewMockEstimator(ctrl)
	b.EXPECT().EstimateWithLimits(gomock.Any(), gomock.Any(), gomock.Any()).Return(gasprice.EstimatedGasPrice{}, errB)

	p := gasprice.NewPriority(&logger, a, b)

	_, err := p.EstimateWithLimits(context.Background(), 21000, 5*time.Second)
	require.Error(t, err)

	var exhausted *gasprice.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Reasons, 2)
	assert.Equal(t, errA, exhausted.Reasons[0])
	assert.Equal(t, errB, exhausted.Reasons[1])
}

func TestPriorityTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()

	released := make(chan struct{})

	src := mocks.NewMockEstimator(ctrl)
	src.EXPECT().EstimateWithLimits(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ float64, _ time.Duration) (gasprice.EstimatedGasPrice, error) {
			<-ctx.Done()
			close(released)
			return gasprice.EstimatedGasPrice{}, ctx.Err()
		})

	p := gasprice.NewPriority(&logger, src)

	start := time.Now()
	_, err := p.EstimateWithLimits(context.Background(), 21000, 50*time.Millisecond)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	var exhausted *gasprice.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Reasons, 1)

	var timeout *gasprice.TimeoutError
	assert.ErrorAs(t, exhausted.Reasons[0], &timeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("source still running after the combinator returned")
	}
}

func TestPriorityBudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()

	a := mocks.NewMockEstimator(ctrl)
	a.EXPECT().EstimateWithLimits(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ float64, _ time.Duration) (gasprice.EstimatedGasPrice, error) {
			<-ctx.Done()
			return gasprice.EstimatedGasPrice{}, ctx.Err()
		})

	// Never reached; the first source consumes the whole budget.
	b := mocks.NewMockEstimator(ctrl)

	p := gasprice.NewPriority(&logger, a, b)

	_, err := p.EstimateWithLimits(context.Background(), 21000, 50*time.Millisecond)
	require.Error(t, err)

	var exhausted *gasprice.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Reasons, 2)
	assert.ErrorIs(t, exhausted.Reasons[0], context.DeadlineExceeded)
	assert.ErrorIs(t, exhausted.Reasons[1], context.DeadlineExceeded)
}

func TestPriorityNests(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()

	want := gasprice.EstimatedGasPrice{
		EIP1559: &gasprice.GasPrice1559{
			BaseFeePerGas:        10,
			MaxFeePerGas:         40,
			MaxPriorityFeePerGas: 2,
		},
	}

	failing := mocks.NewMockEstimator(ctrl)
	failing.EXPECT().EstimateWithLimits(gomock.Any(), gomock.Any(), gomock.Any()).Return(gasprice.EstimatedGasPrice{}, errors.New("boom"))

	succeeding := mocks.NewMockEstimator(ctrl)
	succeeding.EXPECT().EstimateWithLimits(gomock.Any(), gomock.Any(), gomock.Any()).Return(want, nil)

	inner := gasprice.NewPriority(&logger, failing)
	outer := gasprice.NewPriority(&logger, inner, succeeding)

	got, err := gasprice.Estimate(context.Background(), outer)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
