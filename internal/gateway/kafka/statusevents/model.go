package statusevents

import (
	"time"

	"quickship/internal/entities"
)

// statusChangedMessage контракт сообщения в топике, поле schema_version
// оставлено на случай эволюции формата.
type statusChangedMessage struct {
	SchemaVersion int       `json:"schema_version"`
	DeliveryID    int64     `json:"delivery_id"`
	TrackingCode  string    `json:"tracking_code"`
	Status        string    `json:"status"`
	ActorID       int64     `json:"actor_id"`
	Notes         string    `json:"notes,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

const schemaVersion = 1

func toMessage(event entities.StatusChangedEvent) statusChangedMessage {
	return statusChangedMessage{
		SchemaVersion: schemaVersion,
		DeliveryID:    event.DeliveryID,
		TrackingCode:  event.TrackingCode,
		Status:        event.Status.String(),
		ActorID:       event.ActorID,
		Notes:         event.Notes,
		OccurredAt:    event.OccurredAt,
	}
}
