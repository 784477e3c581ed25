package app

import (
	"context"
	"time"

	statusevents "quickship/internal/gateway/kafka/statusevents"
	deliveries_get "quickship/internal/handlers/rest/deliveries_get"
	delivery_claim_post "quickship/internal/handlers/rest/delivery_claim_post"
	delivery_get "quickship/internal/handlers/rest/delivery_get"
	delivery_post "quickship/internal/handlers/rest/delivery_post"
	delivery_status_put "quickship/internal/handlers/rest/delivery_status_put"
	stats_get "quickship/internal/handlers/rest/stats_get"
	tracking_get "quickship/internal/handlers/rest/tracking_get"
	user_get "quickship/internal/handlers/rest/user_get"
	user_post "quickship/internal/handlers/rest/user_post"
	users_get "quickship/internal/handlers/rest/users_get"
	"quickship/internal/handlers/tasks/stats_refresh"
	"quickship/internal/pkg/config"
	"quickship/internal/pkg/kafka"

	deliveryRepo "quickship/internal/repository/delivery"
	userRepo "quickship/internal/repository/user"
	assignmentService "quickship/internal/service/assignment"
	deliveryService "quickship/internal/service/delivery"
	notificationService "quickship/internal/service/notification"
	userService "quickship/internal/service/user"
	workflowService "quickship/internal/service/workflow"

	"quickship/pkg/background"
	"quickship/pkg/logger"
	"quickship/pkg/querier"
	"quickship/pkg/tx"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

type (
	StatsRefreshInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceWorkflow   ServiceWorkflow
	ServiceAssignment ServiceAssignment
	ServiceUser       ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	tracking_get.Service
	stats_get.Service
}

type ServiceWorkflow interface {
	delivery_status_put.Service
}

type ServiceAssignment interface {
	delivery_claim_post.Service
}

type ServiceUser interface {
	user_post.Service
	user_get.Service
	users_get.Service
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	users deliveryService.UserService,
	estimator deliveryService.Estimator,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		users,
		estimator,
		txManager,
	)
}

func provideServiceWorkflow(
	log logger.Logger,
	repository workflowService.Repository,
	users workflowService.UserService,
	publisher workflowService.EventPublisher,
	txManager workflowService.TxManager,
) *workflowService.Workflow {
	return workflowService.New(log, repository, users, publisher, txManager)
}

func provideServiceAssignment(
	log logger.Logger,
	repository assignmentService.Repository,
	users assignmentService.UserService,
	publisher assignmentService.EventPublisher,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(log, repository, users, publisher, txManager)
}

func provideServiceNotification(
	log logger.Logger,
	repository notificationService.Repository,
) *notificationService.Notification {
	return notificationService.New(log, repository)
}

func provideStatusEventsGateway(producer *kafka.Producer, cfg *config.Config) *statusevents.StatusEventsGateway {
	return statusevents.New(producer, cfg.Kafka.Topic)
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.StatsRefreshInterval)
}

func provideStatsRefreshTask(
	log logger.Logger,
	deliveryService stats_refresh.Service,
	interval StatsRefreshInterval,
) *stats_refresh.StatsRefresh {
	return stats_refresh.NewStatsRefresh(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	statsRefreshTask *stats_refresh.StatsRefresh,
) []background.Task {
	return []background.Task{
		statsRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
