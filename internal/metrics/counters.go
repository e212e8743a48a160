package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EstimatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gas_estimation",
		Name:      "estimates_total",
	})

	EstimateErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gas_estimation",
		Name:      "estimate_errors_total",
	})

	RefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gas_estimation",
		Name:      "refreshes_total",
	})

	RefreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gas_estimation",
		Name:      "refresh_errors_total",
	})

	SourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gas_estimation",
			Name:      "source_failures_total",
			Help:      "Failed estimation attempts per gas price source.",
		},
		[]string{"source"},
	)

	EffectiveGasPriceWei = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gas_estimation",
		Name:      "effective_gas_price_wei",
		Help:      "Effective gas price from the most recent refresh.",
	})
)
