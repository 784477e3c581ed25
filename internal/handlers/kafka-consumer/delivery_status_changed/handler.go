package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	deliveryservice "quickship/internal/service/delivery"
	notificationservice "quickship/internal/service/notification"
	"quickship/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.status.changed processing")

	deliveryEntity, err := h.notificationService.ProcessStatusChange(ctx, event.toEntity())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler unknown status in event")

		case errors.Is(err, notificationservice.ErrStatusMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler stale event, notification skipped")

		case errors.Is(err, deliveryservice.ErrDeliveryNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler delivery not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("delivery", deliveryEntity.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", deliveryEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
