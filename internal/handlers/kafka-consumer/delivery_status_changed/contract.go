package delivery_status_changed

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
	ProcessStatusChange(ctx context.Context, event entities.StatusNotification) (*entities.Delivery, error)
}
