//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_post_test
package user_post

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
	CreateUser(ctx context.Context, userModifyEntity entities.UserModify) (int64, error)
}
