package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	CirculationTopic = "library.circulation"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

// Enabled reports whether event publishing is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventBorrow  EventType = "BORROW"
	EventReturn  EventType = "RETURN"
	EventPayment EventType = "PAYMENT"
)

// CirculationEvent is the audit record published on every circulation change.
type CirculationEvent struct {
	Type     EventType `json:"type"`
	PatronID string    `json:"patronId"`
	BookID   int       `json:"bookId"`
	Amount   float64   `json:"amount,omitempty"`
	At       time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
