package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"

	"quickship/internal/entities"
	deliveryservice "quickship/internal/service/delivery"
	"quickship/internal/service/workflow"
	"quickship/pkg/logger"
)

type Assignment struct {
	log         assignmentLogger
	repository  Repository
	userService UserService
	publisher   EventPublisher
	txManager   TxManager
}

func New(
	log assignmentLogger,
	repository Repository,
	userService UserService,
	publisher EventPublisher,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		log:         log,
		repository:  repository,
		userService: userService,
		publisher:   publisher,
		txManager:   txManager,
	}
}

// Claim атомарно закрепляет доставку за водителем и переводит её в accepted.
// Из конкурирующих claim на одну доставку побеждает ровно один, остальные
// получают ErrAlreadyAssigned либо ErrDeliveryBusy по lock_timeout.
func (s *Assignment) Claim(ctx context.Context, deliveryID, driverID int64) (*entities.Delivery, error) {
	if deliveryID <= 0 {
		return nil, deliveryservice.ErrInvalidDeliveryID
	}

	driver, err := s.userService.GetUser(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("resolve driver: %w", err)
	}
	if driver.Role != entities.RoleDriver {
		return nil, workflow.ErrForbidden
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

		if deliveryEntity.DriverID != nil {
			return ErrAlreadyAssigned
		}
		if deliveryEntity.Status != entities.DeliveryCreated {
			return fmt.Errorf("%w: %s -> %s",
				workflow.ErrInvalidTransition, deliveryEntity.Status, entities.DeliveryAccepted)
		}

		if err = s.repository.AssignDriver(ctx, deliveryID, driverID); err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}

		entry = entities.StatusHistoryEntry{
			Status:    entities.DeliveryAccepted,
			Timestamp: time.Now().UTC(),
			ActorID:   driverID,
		}
		if err = s.repository.AppendHistory(ctx, deliveryID, entry); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliveryEntity.Status = entities.DeliveryAccepted
	deliveryEntity.DriverID = pointer.ToInt64(driverID)
	deliveryEntity.StatusHistory = append(deliveryEntity.StatusHistory, entry)

	event := entities.StatusChangedEvent{
		DeliveryID:   deliveryEntity.ID,
		TrackingCode: deliveryEntity.TrackingCode,
		Status:       entities.DeliveryAccepted,
		ActorID:      driverID,
		OccurredAt:   entry.Timestamp,
	}
	if err = s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.Warn("failed to publish status changed event",
			logger.NewField("delivery_id", deliveryEntity.ID),
			logger.NewField("driver_id", driverID),
			logger.NewField("error", err.Error()),
		)
	}

	return deliveryEntity, nil
}
