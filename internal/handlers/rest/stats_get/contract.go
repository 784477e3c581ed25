//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_get_test
package stats_get

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
	GetStats(ctx context.Context, ownerID *int64) (*entities.DeliveryStats, error)
}
