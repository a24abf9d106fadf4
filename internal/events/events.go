// Package events publishes application lifecycle events (login, logout,
// task-added, ...) for observability. Publishing is fire-and-forget and
// never affects request handling.
package events

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// writeTimeout caps how long a single event write may hang on the broker.
const writeTimeout = 5 * time.Second

// Publisher records a lifecycle event by name.
type Publisher interface {
	Publish(action string)
	Close() error
}

// KafkaPublisher writes events to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher returns a publisher for the given broker and topic.
func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish enqueues the event without blocking the caller; the write happens
// on its own goroutine with a bounded timeout, so a slow or unreachable
// broker never stalls a request.
func (p *KafkaPublisher) Publish(action string) {
	msg := kafka.Message{
		Key:   []byte(time.Now().Format(time.RFC3339Nano)),
		Value: []byte(action),
		Time:  time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("[warn] failed to write kafka event %q: %v", action, err)
		}
	}()
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

// Nop discards events; used when no broker is configured.
type Nop struct{}

func (Nop) Publish(string) {}
func (Nop) Close() error   { return nil }
