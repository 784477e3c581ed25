//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_put_test
package delivery_status_put

import (
	"context"

	"quickship/internal/entities"
	"quickship/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Advance(ctx context.Context, deliveryID, actorID int64, target entities.DeliveryStatusType, notes string) (*entities.Delivery, error)
	Cancel(ctx context.Context, deliveryID, actorID int64, notes string) (*entities.Delivery, error)
}
