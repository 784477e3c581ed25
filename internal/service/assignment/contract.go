//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"quickship/internal/entities"
	"quickship/pkg/logger"
)

type assignmentLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
	AssignDriver(ctx context.Context, id, driverID int64) error
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
