//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"quickship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, d *entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByTrackingCode(ctx context.Context, code string) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	AppendHistory(ctx context.Context, deliveryID int64, entry entities.StatusHistoryEntry) error
	Stats(ctx context.Context, ownerID *int64) (*entities.DeliveryStats, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type Estimator interface {
	Estimate(
		pickup, drop entities.Coordinates,
		weightKg float64,
		priority entities.DeliveryPriorityType,
		baseTime time.Time,
	) (entities.Quote, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
