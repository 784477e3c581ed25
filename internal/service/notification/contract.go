//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"quickship/internal/entities"
	"quickship/pkg/logger"
)

type notificationLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
}
