package entities

import "time"

// StatusNotification событие смены статуса доставки, прочитанное воркером
// из Kafka. Содержимое совпадает с сообщением delivery.status.changed.
type StatusNotification struct {
	DeliveryID   int64
	TrackingCode string
	Status       DeliveryStatusType
	ActorID      int64
	Notes        string
	OccurredAt   time.Time
}
