//go:build wireinject
// +build wireinject

package app

import (
	"context"

	statusevents "quickship/internal/gateway/kafka/statusevents"
	"quickship/internal/handlers/tasks/stats_refresh"
	"quickship/internal/pkg/config"
	pricing "quickship/internal/pkg/factory/pricing"
	"quickship/internal/pkg/kafka"

	deliveryRepo "quickship/internal/repository/delivery"
	userRepo "quickship/internal/repository/user"
	assignmentService "quickship/internal/service/assignment"
	deliveryService "quickship/internal/service/delivery"
	notificationService "quickship/internal/service/notification"
	userService "quickship/internal/service/user"
	workflowService "quickship/internal/service/workflow"

	"quickship/pkg/logger"
	"quickship/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsRefreshInterval,

		provideUserRepository,
		provideDeliveryRepository,

		provideServiceUser,
		provideServiceDelivery,
		provideServiceWorkflow,
		provideServiceAssignment,
		pricing.New,
		provideStatusEventsGateway,

		provideStatsRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceWorkflow), new(*workflowService.Workflow)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceUser), new(*userService.User)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(workflowService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*deliveryRepo.Repository)),

		wire.Bind(new(deliveryService.UserService), new(*userService.User)),
		wire.Bind(new(workflowService.UserService), new(*userService.User)),
		wire.Bind(new(assignmentService.UserService), new(*userService.User)),

		wire.Bind(new(deliveryService.Estimator), new(*pricing.EstimateFactory)),

		wire.Bind(new(workflowService.EventPublisher), new(*statusevents.StatusEventsGateway)),
		wire.Bind(new(assignmentService.EventPublisher), new(*statusevents.StatusEventsGateway)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(workflowService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stats_refresh.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-status-notifier)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideDeliveryRepository,
		provideServiceNotification,

		wire.Bind(new(notificationService.Repository), new(*deliveryRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
