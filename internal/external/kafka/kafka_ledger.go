package omega

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	model "github.com/Vitrio14/vitrio-discord-backend/internal/models"
	"github.com/segmentio/kafka-go"
)

// Публикация записей истории в Kafka для внешних потребителей
type LedgerWriter struct {
	writer *kafka.Writer
}

func NewLedgerWriter(topic string) (*LedgerWriter, error) {
	// config
	kafkaurl := os.Getenv("KAFKA_LEDGER_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_LEDGER_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_LEDGER_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_LEDGER_PORT is not set")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(kafkaurl + ":" + kafkaport),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &LedgerWriter{writer}, nil
}

func (l *LedgerWriter) Publish(ctx context.Context, entry model.LedgerEntry) error {
	msg, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return l.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entry.UserID),
		Value: msg,
	})
}

func (l *LedgerWriter) Close() {
	l.writer.Close()
}
