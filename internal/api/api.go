// Package api exposes the estimator over HTTP.
package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/internal/metrics"
	"github.com/gnosis/gp-gas-estimation/internal/refresher"
)

type priceResponse struct {
	Effective float64                    `json:"effective"`
	Cap       float64                    `json:"cap"`
	Price     gasprice.EstimatedGasPrice `json:"price"`
	Time      *time.Time                 `json:"time,omitempty"`
}

func toResponse(price gasprice.EstimatedGasPrice) priceResponse {
	return priceResponse{
		Effective: price.EffectiveGasPrice(),
		Cap:       price.Cap(),
		Price:     price,
	}
}

// New builds the gas price API. Prices returned to clients are capped at
// ceiling when it is positive and rounded up to whole wei; estimation
// itself returns the raw source value.
func New(logger *zerolog.Logger, estimator gasprice.Estimator, ref *refresher.Refresher, ceiling float64) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	shape := func(price gasprice.EstimatedGasPrice) gasprice.EstimatedGasPrice {
		if ceiling > 0 {
			price = price.LimitCap(ceiling)
		}
		return price.Ceil()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/v1/gas-price", func(c *fiber.Ctx) error {
		logger := logger.With().Str("requestId", ksuid.New().String()).Logger()

		gasLimit := gasprice.DefaultGasLimit
		if raw := c.Query("gas"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed <= 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid gas parameter"})
			}
			gasLimit = parsed
		}

		timeLimit := gasprice.DefaultTimeLimit
		if raw := c.Query("timeLimit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid timeLimit parameter"})
			}
			timeLimit = time.Duration(parsed) * time.Second
		}

		price, err := estimator.EstimateWithLimits(c.Context(), gasLimit, timeLimit)
		if err != nil {
			metrics.EstimateErrorsTotal.Inc()
			logger.Err(err).Msg("Failed to estimate gas price.")
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "all gas price sources failed"})
		}

		metrics.EstimatesTotal.Inc()

		return c.JSON(toResponse(shape(price)))
	})

	app.Get("/v1/gas-price/cached", func(c *fiber.Ctx) error {
		price, at, ok := ref.Last()
		if !ok {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "no refreshed gas price yet"})
		}

		res := toResponse(shape(price))
		res.Time = &at

		return c.JSON(res)
	})

	return app
}
