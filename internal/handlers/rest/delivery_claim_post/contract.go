//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_claim_post_test
package delivery_claim_post

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
	Claim(ctx context.Context, deliveryID, driverID int64) (*entities.Delivery, error)
}
