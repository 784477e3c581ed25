package delivery_status_changed

import (
	"time"

	"quickship/internal/entities"
)

// statusChangedEvent тело сообщения топика delivery.status.changed,
// зеркало контракта продюсера.
type statusChangedEvent struct {
	SchemaVersion int       `json:"schema_version"`
	DeliveryID    int64     `json:"delivery_id"`
	TrackingCode  string    `json:"tracking_code"`
	Status        string    `json:"status"`
	ActorID       int64     `json:"actor_id"`
	Notes         string    `json:"notes,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e statusChangedEvent) toEntity() entities.StatusNotification {
	return entities.StatusNotification{
		DeliveryID:   e.DeliveryID,
		TrackingCode: e.TrackingCode,
		Status:       entities.DeliveryStatusType(e.Status),
		ActorID:      e.ActorID,
		Notes:        e.Notes,
		OccurredAt:   e.OccurredAt,
	}
}
