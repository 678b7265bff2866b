// Package events announces records inserted into the catalog.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"demo/catalog/internal/model"
)

type Event struct {
	Collection model.Collection
	ID         string
	Payload    any
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	w      messageWriter
	source string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 5 * time.Second,
		},
		source: "catalog-service",
	}
}

// Publish writes one message keyed by the record id so every event for a
// record lands on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	val, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Collection, err)
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.ID),
		Value: val,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "source", Value: []byte(p.source)},
			{Key: "collection", Value: []byte(e.Collection)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s/%s: %w", e.Collection, e.ID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }
