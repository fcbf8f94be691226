package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout   = 10 * time.Second
	headerEventKey = "event"

	fetchBackoffMin = 100 * time.Millisecond
	fetchBackoffMax = 5 * time.Second
)

// Message is a JSON-encoded record. Event lands in the "event" header so
// consumers can route without decoding the payload.
type Message struct {
	Key   string
	Event string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	raw, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	msg := kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: raw,
	}

	if m.Event != "" {
		msg.Headers = append(msg.Headers, kafkaGo.Header{Key: headerEventKey, Value: []byte(m.Event)})
	}

	return msg, nil
}

// Decode unmarshals a record value into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

// EventOf returns the event header of msg, or "".
func EventOf(msg kafkaGo.Message) string {
	for _, h := range msg.Headers {
		if h.Key == headerEventKey {
			return string(h.Value)
		}
	}

	return ""
}

// Handler processes one record. Errors are logged and the offset is still
// committed, so a poison message cannot stall the partition.
type Handler func(ctx context.Context, msg kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error
	Close() error
}

type kafkaClientImpl struct {
	config    *config.Config
	otel      otel.Otel
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport

	mu       sync.Mutex
	writers  map[string]*kafkaGo.Writer
	inflight sync.WaitGroup
}

func New(cfg *config.Config, otel otel.Otel) Client {
	var mechanism sasl.Mechanism

	if cfg.Kafka.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: cfg,
		otel:   otel,
		dialer: &kafkaGo.Dialer{
			Timeout:       writeTimeout,
			DualStack:     true,
			SASLMechanism: mechanism,
		},
		transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
		writers: make(map[string]*kafkaGo.Writer),
	}
}

func (k *kafkaClientImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if w, ok := k.writers[topic]; ok {
		return w
	}

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}
	k.writers[topic] = w

	return w
}

// SendMessages writes synchronously; records sharing a key keep their order.
func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	k.inflight.Add(1)
	defer k.inflight.Done()

	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"messaging.destination": topic, "messaging.batch": len(messages)})

	records := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		record, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message")

			return err
		}

		records = append(records, record)
	}

	if err = k.writer(topic).WriteMessages(ctx, records...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(records)).Msg("Sent messages")

	return nil
}

// Consume blocks until ctx is cancelled.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error {
	if topic == "" {
		return errors.New("topic name cannot be empty")
	}

	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader")
		}
	}()

	log.Info().Str("topic", topic).Str("group", groupID).Msg("Consumer started")

	retry := newFetchBackOff()
	failures := 0

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer stopped")

				return nil
			}

			log.Error().Err(err).Str("topic", topic).Int("failures", failures+1).Msg("Failed to read message from Kafka")

			if !sleepContext(ctx, retry.NextBackOff()) {
				log.Info().Str("topic", topic).Msg("Consumer stopped")

				return nil
			}

			failures++

			continue
		}

		if failures > 0 {
			failures = 0
			retry.Reset()
		}

		k.handle(ctx, msg, handler)

		if err = reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to commit offset")
		}
	}
}

func (k *kafkaClientImpl) handle(ctx context.Context, msg kafkaGo.Message, handler Handler) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Consume")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"messaging.destination": msg.Topic,
		"messaging.key":         string(msg.Key),
		"messaging.event":       EventOf(msg),
	})

	if err := handler(ctx, msg); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", msg.Topic).Str("key", string(msg.Key)).Msg("Failed to handle message")
	}
}

// Close waits for in-flight sends before closing the writers.
func (k *kafkaClientImpl) Close() error {
	k.inflight.Wait()

	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error
	for topic, w := range k.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close writer %s: %w", topic, err))
		}
	}

	return errors.Join(errs...)
}

// newFetchBackOff doubles the wait from fetchBackoffMin on each consecutive
// failure, capped at fetchBackoffMax.
func newFetchBackOff() *backoff.ExponentialBackOff {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = fetchBackoffMin
	retry.MaxInterval = fetchBackoffMax
	retry.Multiplier = 2
	retry.RandomizationFactor = 0
	retry.Reset()

	return retry
}

// sleepContext reports false when ctx ends before d elapses.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
