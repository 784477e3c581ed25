package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quickship/internal/entities"
)

const (
	trackingCodePrefix = "QS-"
	trackingCodeLength = 10

	defaultPageLimit = 10
	maxPageLimit     = 100
)

type Delivery struct {
	repository  Repository
	userService UserService
	estimator   Estimator
	txManager   TxManager
}

func New(
	repository Repository,
	userService UserService,
	estimator Estimator,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:  repository,
		userService: userService,
		estimator:   estimator,
		txManager:   txManager,
	}
}

// CreateDelivery считает котировку, присваивает трек-код и в одной транзакции
// сохраняет доставку вместе с первой записью истории.
func (s *Delivery) CreateDelivery(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error) {
	if create.OwnerID <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidAddress(create.PickupAddress) || !isValidAddress(create.DropAddress) {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(create.Customer.Name) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCustomerPhone(create.Customer.Phone) {
		return nil, ErrInvalidCustomerPhone
	}
	if create.Package.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	priority := create.Priority
	if priority == "" {
		priority = entities.DefaultPriority
	}
	if !isValidPriority(priority.String()) {
		return nil, ErrInvalidPriority
	}

	owner, err := s.userService.GetUser(ctx, create.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("resolve owner: %w", err)
	}
	if !owner.Role.CanCreateDeliveries() {
		return nil, ErrOwnerRoleRequired
	}

	now := time.Now().UTC()

	quote, err := s.estimator.Estimate(
		create.PickupAddress.Coordinates,
		create.DropAddress.Coordinates,
		create.Package.WeightKg,
		priority,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("estimate delivery: %w", err)
	}

	deliveryEntity := &entities.Delivery{
		TrackingCode:          newTrackingCode(),
		OwnerID:               create.OwnerID,
		Status:                entities.DeliveryCreated,
		Priority:              priority,
		PickupAddress:         create.PickupAddress,
		DropAddress:           create.DropAddress,
		Customer:              create.Customer,
		Package:               create.Package,
		DistanceKm:            quote.DistanceKm,
		TotalPrice:            quote.TotalPrice,
		EstimatedDeliveryTime: quote.EstimatedDeliveryTime,
	}

	firstEntry := entities.StatusHistoryEntry{
		Status:    entities.DeliveryCreated,
		Timestamp: now,
		ActorID:   create.OwnerID,
	}

	var stored *entities.Delivery
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		stored, err = s.repository.Create(ctx, deliveryEntity)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if err = s.repository.AppendHistory(ctx, stored.ID, firstEntry); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	stored.StatusHistory = []entities.StatusHistoryEntry{firstEntry}

	return stored, nil
}

func (s *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	return deliveryEntity, nil
}

// TrackDelivery публичный поиск по трек-коду, без проверки владельца.
func (s *Delivery) TrackDelivery(ctx context.Context, trackingCode string) (*entities.Delivery, error) {
	if !isValidTrackingCode(trackingCode) {
		return nil, ErrInvalidTrackingCode
	}

	deliveryEntity, err := s.repository.GetByTrackingCode(ctx, strings.TrimSpace(trackingCode))
	if err != nil {
		return nil, fmt.Errorf("failed to track delivery: %w", err)
	}

	return deliveryEntity, nil
}

func (s *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	deliveries, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	return deliveries, nil
}

func (s *Delivery) GetStats(ctx context.Context, ownerID *int64) (*entities.DeliveryStats, error) {
	if ownerID != nil && *ownerID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	stats, err := s.repository.Stats(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery stats: %w", err)
	}

	return stats, nil
}

func newTrackingCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingCodePrefix + strings.ToUpper(raw[:trackingCodeLength])
}
