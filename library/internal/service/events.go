package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/tTrmc/library-service/pkg/kafka"
)

func eventBorrow(patronID string, bookID int, at time.Time) kafka.CirculationEvent {
	return kafka.CirculationEvent{Type: kafka.EventBorrow, PatronID: patronID, BookID: bookID, At: at}
}

func eventReturn(patronID string, bookID int, fee float64, at time.Time) kafka.CirculationEvent {
	return kafka.CirculationEvent{Type: kafka.EventReturn, PatronID: patronID, BookID: bookID, Amount: fee, At: at}
}

func eventPayment(patronID string, bookID int, amount float64, at time.Time) kafka.CirculationEvent {
	return kafka.CirculationEvent{Type: kafka.EventPayment, PatronID: patronID, BookID: bookID, Amount: amount, At: at}
}

// publishEvent is best-effort: audit publishing never fails an operation.
func (s *Service) publishEvent(_ context.Context, ev kafka.CirculationEvent) {
	if s.producer == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		s.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.CirculationTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
