//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workflow_test
package workflow

import (
	"context"

	"quickship/internal/entities"
	"quickship/pkg/logger"
)

type workflowLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
	SetStatus(ctx context.Context, id int64, status entities.DeliveryStatusType) error
	AppendHistory(ctx context.Context, deliveryID int64, entry entities.StatusHistoryEntry) error
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
