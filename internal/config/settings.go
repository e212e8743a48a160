package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	// MonitoringPort is the port on which we run the health check endpoint
	// and serve Prometheus metrics.
	MonitoringPort string `yaml:"MONITORING_PORT"`

	// APIPort is the port for the gas price API.
	APIPort string `yaml:"API_PORT"`

	// EthereumRPCURL is the URL of a JSON-RPC endpoint to use as the
	// node-backed price source. Empty disables the source.
	EthereumRPCURL string `yaml:"ETHEREUM_RPC_URL"`

	// BlocknativeAPIKey authorizes requests to the Blocknative block prices
	// API. Empty disables the source.
	BlocknativeAPIKey string `yaml:"BLOCKNATIVE_API_KEY"`

	// BlocknativeURL overrides the production Blocknative endpoint.
	BlocknativeURL string `yaml:"BLOCKNATIVE_URL"`

	// EthGasStationURL is the EthGasStation endpoint. Empty disables the
	// source.
	EthGasStationURL string `yaml:"ETH_GAS_STATION_URL"`

	// GasNowURL is the GasNow endpoint. Empty disables the source.
	GasNowURL string `yaml:"GAS_NOW_URL"`

	// GnosisSafeURL is the Safe relay gas station endpoint. Empty disables
	// the source.
	GnosisSafeURL string `yaml:"GNOSIS_SAFE_URL"`

	// GasPriceCeiling is the most the service will ever recommend paying
	// per unit of gas, in wei. Zero disables capping.
	GasPriceCeiling float64 `yaml:"GAS_PRICE_CEILING"`

	// RefreshIntervalSeconds is how often the background refresher
	// re-estimates the gas price.
	RefreshIntervalSeconds int64 `yaml:"REFRESH_INTERVAL_SECONDS"`

	// KafkaServers is a comma-separated list of Kafka bootstrap servers.
	// Empty disables publishing of price updates.
	KafkaServers string `yaml:"KAFKA_SERVERS"`

	// GasPriceTopic is the topic onto which the service publishes price
	// updates.
	GasPriceTopic string `yaml:"GAS_PRICE_TOPIC"`
}

// Load reads settings from the yaml file at path.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(b, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}
