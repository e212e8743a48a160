package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gnosis/gp-gas-estimation/gasprice"
	"github.com/gnosis/gp-gas-estimation/internal/api"
	"github.com/gnosis/gp-gas-estimation/internal/config"
	"github.com/gnosis/gp-gas-estimation/internal/metrics"
	"github.com/gnosis/gp-gas-estimation/internal/publish"
	"github.com/gnosis/gp-gas-estimation/internal/refresher"
	"github.com/gnosis/gp-gas-estimation/oracle"
	"github.com/gnosis/gp-gas-estimation/transport"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "gas-estimator").Logger()

	settings, err := config.Load("settings.yaml")
	if err != nil {
		logger.Fatal().Err(err).Msg("Couldn't load settings.")
	}

	ctx, cancel := context.WithCancel(context.Background())

	httpTransport := transport.NewHTTPClient()

	// Sources in decreasing order of trust: the node we talk to directly
	// first, then the third-party aggregators.
	var estimators []gasprice.Estimator

	if settings.EthereumRPCURL != "" {
		ethClient, err := ethclient.Dial(settings.EthereumRPCURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Ethereum client.")
		}
		estimators = append(estimators, metrics.Instrument("eth_node", oracle.NewEthNode(ethClient)))
	}

	if settings.BlocknativeAPIKey != "" {
		url := settings.BlocknativeURL
		if url == "" {
			url = oracle.DefaultBlocknativeURL
		}
		estimators = append(estimators, metrics.Instrument("blocknative", oracle.NewBlocknative(httpTransport, url, settings.BlocknativeAPIKey)))
	}

	if settings.GasNowURL != "" {
		estimators = append(estimators, metrics.Instrument("gasnow", oracle.NewGasNow(httpTransport, settings.GasNowURL)))
	}

	if settings.EthGasStationURL != "" {
		estimators = append(estimators, metrics.Instrument("ethgasstation", oracle.NewEthGasStation(httpTransport, settings.EthGasStationURL)))
	}

	if settings.GnosisSafeURL != "" {
		estimators = append(estimators, metrics.Instrument("gnosis_safe", oracle.NewGnosisSafe(httpTransport, settings.GnosisSafeURL)))
	}

	if len(estimators) == 0 {
		logger.Fatal().Msg("No gas price sources configured.")
	}

	logger.Info().Int("sources", len(estimators)).Msg("Loaded settings.")

	estimator := gasprice.NewPriority(&logger, estimators...)

	prod := publish.NewNop()
	if settings.KafkaServers != "" {
		kafkaConfig := sarama.NewConfig()
		kafkaConfig.Producer.Return.Successes = true

		kafkaClient, err := sarama.NewClient(strings.Split(settings.KafkaServers, ","), kafkaConfig)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Kafka client.")
		}

		prod, err = publish.NewKafka(settings.GasPriceTopic, kafkaClient, &logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Kafka price update producer.")
		}
	}

	ref := refresher.New(&logger, estimator, prod)
	if settings.RefreshIntervalSeconds > 0 {
		go ref.Run(ctx, time.Duration(settings.RefreshIntervalSeconds)*time.Second)
	}

	app := api.New(&logger, estimator, ref, settings.GasPriceCeiling)

	go func() {
		if err := app.Listen(":" + settings.APIPort); err != nil {
			logger.Fatal().Err(err).Msg("API server failed.")
		}
	}()

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+settings.MonitoringPort, nil); err != nil {
			logger.Fatal().Err(err).Msg("Monitoring server failed.")
		}
	}()

	logger.Info().Msg("Started.")

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, os.Interrupt)

	sig := <-sigterm
	logger.Info().Str("signal", sig.String()).Msg("Received signal, terminating.")

	cancel()

	if err := app.Shutdown(); err != nil {
		logger.Err(err).Msg("Failed to shut down API server.")
	}
}
