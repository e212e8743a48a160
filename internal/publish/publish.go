package publish

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/gnosis/gp-gas-estimation/gasprice"
)

// PriceMsg describes a freshly refreshed gas price.
type PriceMsg struct {
	Effective float64                    `json:"effective"`
	Price     gasprice.EstimatedGasPrice `json:"price"`
}

//go:generate mockgen -source publish.go -destination ../mocks/publish.go -package mocks

// Producer emits gas price updates to downstream consumers.
type Producer interface {
	PriceUpdated(msg *PriceMsg)
}

type priceEvent struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Time   time.Time `json:"time"`
	Type   string    `json:"type"`
	Data   *PriceMsg `json:"data"`
}

type kafkaProducer struct {
	kp     sarama.SyncProducer
	topic  string
	logger *zerolog.Logger
}

// NewKafka returns a Producer that publishes price updates onto topic.
func NewKafka(topic string, client sarama.Client, logger *zerolog.Logger) (Producer, error) {
	kp, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		return nil, err
	}

	return &kafkaProducer{kp: kp, topic: topic, logger: logger}, nil
}

func (p *kafkaProducer) PriceUpdated(msg *PriceMsg) {
	event := priceEvent{
		ID:     ksuid.New().String(),
		Source: "gas-estimator",
		Time:   time.Now(),
		Type:   "io.gnosis.gasprice.updated",
		Data:   msg,
	}

	bs, err := json.Marshal(event)
	if err != nil {
		p.logger.Err(err).Msg("Couldn't marshal price update.")
		return
	}

	_, _, err = p.kp.SendMessage(
		&sarama.ProducerMessage{
			Topic: p.topic,
			Value: sarama.ByteEncoder(bs),
		},
	)

	if err != nil {
		p.logger.Err(err).Msg("Failed sending price update.")
	}
}

type nopProducer struct{}

// NewNop returns a Producer that drops all updates.
func NewNop() Producer {
	return nopProducer{}
}

func (nopProducer) PriceUpdated(*PriceMsg) {}
