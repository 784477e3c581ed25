package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"quickship/internal/entities"
	"quickship/internal/pkg/config"
)

// ErrInvalidCoordinates координаты отсутствуют или вне диапазона lat/lng.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

const earthRadiusKm = 6371.0

// EstimateFactory чистая функция тарифа: расстояние, цена и ETA считаются
// один раз при создании доставки и после этого не пересчитываются.
type EstimateFactory struct {
	cfg config.Pricing
}

func New(cfg *config.Config) *EstimateFactory {
	return &EstimateFactory{
		cfg: cfg.Pricing,
	}
}

func (f *EstimateFactory) Estimate(
	pickup, drop entities.Coordinates,
	weightKg float64,
	priority entities.DeliveryPriorityType,
	baseTime time.Time,
) (entities.Quote, error) {
	if err := validateCoordinates(pickup); err != nil {
		return entities.Quote{}, fmt.Errorf("pickup: %w", err)
	}
	if err := validateCoordinates(drop); err != nil {
		return entities.Quote{}, fmt.Errorf("drop: %w", err)
	}

	distanceKm := roundTo(haversineKm(pickup, drop), 1)
	price := roundTo((f.cfg.BaseFare+f.cfg.PerKm*distanceKm+f.cfg.PerKg*weightKg)*f.priorityFactor(priority), 2)

	travel := time.Duration(distanceKm / f.cfg.AvgSpeedKmh * float64(time.Hour))

	return entities.Quote{
		DistanceKm:            distanceKm,
		TotalPrice:            price,
		EstimatedDeliveryTime: baseTime.Add(travel),
	}, nil
}

func (f *EstimateFactory) priorityFactor(priority entities.DeliveryPriorityType) float64 {
	switch priority {
	case entities.PriorityLow:
		return f.cfg.LowFactor
	case entities.PriorityMedium:
		return f.cfg.MediumFactor
	case entities.PriorityHigh:
		return f.cfg.HighFactor
	case entities.PriorityUrgent:
		return f.cfg.UrgentFactor
	default:
		return f.cfg.MediumFactor
	}
}

func validateCoordinates(c entities.Coordinates) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: lat %v out of range", ErrInvalidCoordinates, c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: lng %v out of range", ErrInvalidCoordinates, c.Lng)
	}
	return nil
}

// haversineKm расстояние по дуге большого круга.
func haversineKm(from, to entities.Coordinates) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
