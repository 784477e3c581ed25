package stats_refresh

import (
	"context"
	"time"

	"quickship/internal/entities"
	"quickship/pkg/logger"
)

type Service interface {
	GetStats(ctx context.Context, ownerID *int64) (*entities.DeliveryStats, error)
}

// StatsRefresh периодически пересчитывает gauges по статусам доставок,
// чтобы /metrics отражал текущее состояние парка без запроса в БД.
type StatsRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatsRefresh(log logger.Logger, service Service, interval time.Duration) *StatsRefresh {
	return &StatsRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatsRefresh) TTL() time.Duration {
	return s.interval
}

func (s *StatsRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	stats, err := s.service.GetStats(ctxWithTimeout, nil)
	if err != nil {
		return err
	}

	deliveriesTotal.Set(float64(stats.TotalDeliveries))

	// Сбрасываем вектор целиком: статусы без единой доставки должны
	// показывать ноль, а не последнее ненулевое значение.
	deliveriesByStatus.Reset()
	for _, count := range stats.StatusBreakdown {
		deliveriesByStatus.WithLabelValues(count.Status.String()).Set(float64(count.Count))
	}

	s.log.With(
		logger.NewField("total_deliveries", stats.TotalDeliveries),
	).Info("delivery stats refreshed")

	return nil
}

func (s *StatsRefresh) Info() string {
	return "delivery stats refresh"
}
