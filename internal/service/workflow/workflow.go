package workflow

import (
	"context"
	"fmt"
	"time"

	"quickship/internal/entities"
	deliveryservice "quickship/internal/service/delivery"
	"quickship/pkg/logger"
)

const maxNotesLength = 500

// Разрешённые «вперёд» переходы. created -> accepted проходит только через
// claim в assignment, поэтому здесь его нет.
var allowedTransitions = map[entities.DeliveryStatusType]entities.DeliveryStatusType{
	entities.DeliveryAccepted: entities.DeliveryPickedUp,
	entities.DeliveryPickedUp: entities.DeliveryOnTheWay,
	entities.DeliveryOnTheWay: entities.DeliveryDelivered,
}

type Workflow struct {
	log         workflowLogger
	repository  Repository
	userService UserService
	publisher   EventPublisher
	txManager   TxManager
}

func New(
	log workflowLogger,
	repository Repository,
	userService UserService,
	publisher EventPublisher,
	txManager TxManager,
) *Workflow {
	return &Workflow{
		log:         log,
		repository:  repository,
		userService: userService,
		publisher:   publisher,
		txManager:   txManager,
	}
}

// Advance переводит доставку в следующий статус. Строка доставки берётся под
// блокировку, так что конкурирующие переходы сериализуются.
func (s *Workflow) Advance(
	ctx context.Context,
	deliveryID int64,
	actorID int64,
	target entities.DeliveryStatusType,
	notes string,
) (*entities.Delivery, error) {
	if deliveryID <= 0 {
		return nil, deliveryservice.ErrInvalidDeliveryID
	}
	if !isKnownStatus(target) {
		return nil, ErrUnknownStatus
	}
	if len(notes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	actor, err := s.userService.GetUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}

	var (
		deliveryEntity *entities.Delivery
		entry          entities.StatusHistoryEntry
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err = s.repository.GetByIDForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery for update: %w", err)
		}

		if allowedTransitions[deliveryEntity.Status] != target {
			return fmt.Errorf("%w: %s -> %s",
				ErrInvalidTransition, deliveryEntity.Status, target)
		}

		if !canAdvance(actor, deliveryEntity) {
			return ErrForbidden
		}

		if err = s.repository.SetStatus(ctx, deliveryID, target); err != nil {
			return fmt.Errorf("set delivery status: %w", err)
		}

		entry = entities.StatusHistoryEntry{
			Status:    target,
			Timestamp: time.Now().UTC(),
			Notes:     notes,
			ActorID:   actorID,
		}
		if err = s.repository.AppendHistory(ctx, deliveryID, entry); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliveryEntity.Status = target
	deliveryEntity.StatusHistory = append(deliveryEntity.StatusHistory, entry)

	s.publishStatusChanged(ctx, deliveryEntity, entry)

	return deliveryEntity, nil
}

// Cancel доступна владельцу и админу из любого нетерминального статуса.
func (s *Workflow) Cancel(
	ctx context.Context,
	deliveryID int64,
	actorID int64,
	notes string,
) (*entities.Delivery, error) {
	if deliveryID <= 0 {
		return nil, deliveryservice.ErrInvalidDeliveryID
	}
	if len(notes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	actor, err := s.userService.GetUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve actor: %w", err)
	}

	var (
		deliveryEntity *entities.Delivery
		entry          entities.StatusHistoryEntry
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err = s.repository.GetByIDForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery for update: %w", err)
		}

		if deliveryEntity.Status.IsTerminal() {
			return fmt.Errorf("%w: %s -> %s",
				ErrInvalidTransition, deliveryEntity.Status, entities.DeliveryCancelled)
		}

		if !canCancel(actor, deliveryEntity) {
			return ErrForbidden
		}

		if err = s.repository.SetStatus(ctx, deliveryID, entities.DeliveryCancelled); err != nil {
			return fmt.Errorf("set delivery status: %w", err)
		}

		entry = entities.StatusHistoryEntry{
			Status:    entities.DeliveryCancelled,
			Timestamp: time.Now().UTC(),
			Notes:     notes,
			ActorID:   actorID,
		}
		if err = s.repository.AppendHistory(ctx, deliveryID, entry); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliveryEntity.Status = entities.DeliveryCancelled
	deliveryEntity.StatusHistory = append(deliveryEntity.StatusHistory, entry)

	s.publishStatusChanged(ctx, deliveryEntity, entry)

	return deliveryEntity, nil
}

// publishStatusChanged уведомление best-effort: сбой публикации не откатывает
// уже закоммиченный переход.
func (s *Workflow) publishStatusChanged(
	ctx context.Context,
	deliveryEntity *entities.Delivery,
	entry entities.StatusHistoryEntry,
) {
	event := entities.StatusChangedEvent{
		DeliveryID:   deliveryEntity.ID,
		TrackingCode: deliveryEntity.TrackingCode,
		Status:       entry.Status,
		ActorID:      entry.ActorID,
		Notes:        entry.Notes,
		OccurredAt:   entry.Timestamp,
	}

	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.Warn("failed to publish status changed event",
			logger.NewField("delivery_id", deliveryEntity.ID),
			logger.NewField("status", entry.Status.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

// canAdvance «вперёд» двигает только назначенный водитель, админу доступна
// лишь отмена.
func canAdvance(actor *entities.User, deliveryEntity *entities.Delivery) bool {
	return actor.Role == entities.RoleDriver &&
		deliveryEntity.DriverID != nil &&
		*deliveryEntity.DriverID == actor.ID
}

func canCancel(actor *entities.User, deliveryEntity *entities.Delivery) bool {
	return actor.Role == entities.RoleAdmin || deliveryEntity.OwnerID == actor.ID
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
