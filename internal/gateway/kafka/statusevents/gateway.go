package statusevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"quickship/internal/entities"
	retrierconfig "quickship/pkg/retrier"
	"quickship/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 50 * time.Millisecond
	maxInterval     = 500 * time.Millisecond
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type StatusEventsGateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *StatusEventsGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	return &StatusEventsGateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

// PublishStatusChanged шлет событие с ключом по идентификатору доставки,
// так все события одной доставки попадают в одну партицию по порядку.
func (g *StatusEventsGateway) PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("gateway statusevents, marshal event: %w", err)
	}

	key := strconv.FormatInt(event.DeliveryID, 10)

	start := time.Now()
	err = g.retrier.ExecuteWithContext(ctx, func(_ context.Context) error {
		return g.producer.Send(g.topic, key, payload)
	})
	duration := time.Since(start).Seconds()

	result := "success"
	if err != nil {
		result = "error"
	}

	EventsPublishedTotal.WithLabelValues(g.topic, event.Status.String(), result).Inc()
	EventPublishDuration.WithLabelValues(g.topic, result).Observe(duration)

	if err != nil {
		return fmt.Errorf("gateway statusevents, publish delivery %d: %w", event.DeliveryID, err)
	}

	return nil
}
