package notification

import (
	"context"
	"fmt"

	"quickship/internal/entities"
	deliveryservice "quickship/internal/service/delivery"
	"quickship/pkg/logger"
)

const (
	resultDispatched = "dispatched"
	resultSkipped    = "skipped"
	resultError      = "error"
)

type Notification struct {
	log        notificationLogger
	repository Repository
}

func New(log notificationLogger, repository Repository) *Notification {
	serviceLog := log.With(
		logger.NewField("service", "notification"),
	)

	return &Notification{
		log:        serviceLog,
		repository: repository,
	}
}

// ProcessStatusChange обрабатывает событие смены статуса: находит доставку,
// сверяет статус с текущим и отправляет уведомление клиенту. Отправка пока
// ограничена структурным логом, но путь события и контакт клиента уже
// подготовлены для внешнего канала.
func (n *Notification) ProcessStatusChange(ctx context.Context, event entities.StatusNotification) (*entities.Delivery, error) {
	if event.DeliveryID <= 0 {
		notificationsDispatchedTotal.WithLabelValues(event.Status.String(), resultError).Inc()
		return nil, deliveryservice.ErrInvalidDeliveryID
	}

	if !isKnownStatus(event.Status) {
		notificationsDispatchedTotal.WithLabelValues(event.Status.String(), resultError).Inc()
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, event.Status)
	}

	deliveryEntity, err := n.repository.GetByID(ctx, event.DeliveryID)
	if err != nil {
		notificationsDispatchedTotal.WithLabelValues(event.Status.String(), resultError).Inc()
		return nil, fmt.Errorf("service notification, get delivery %d: %w", event.DeliveryID, err)
	}

	// Событие могло устареть, пока лежало в топике: доставку уже перевели
	// дальше. Такое уведомление не отправляем.
	if deliveryEntity.Status != event.Status {
		notificationsDispatchedTotal.WithLabelValues(event.Status.String(), resultSkipped).Inc()
		return deliveryEntity, fmt.Errorf("%w: event %s, current %s",
			ErrStatusMismatch, event.Status, deliveryEntity.Status)
	}

	n.log.With(
		logger.NewField("delivery", deliveryEntity.ID),
		logger.NewField("tracking_code", deliveryEntity.TrackingCode),
		logger.NewField("status", event.Status.String()),
		logger.NewField("customer", deliveryEntity.Customer.Name),
		logger.NewField("phone", deliveryEntity.Customer.Phone),
	).Info("delivery status notification dispatched")

	notificationsDispatchedTotal.WithLabelValues(event.Status.String(), resultDispatched).Inc()

	return deliveryEntity, nil
}

func isKnownStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryCreated,
		entities.DeliveryAccepted,
		entities.DeliveryPickedUp,
		entities.DeliveryOnTheWay,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}
