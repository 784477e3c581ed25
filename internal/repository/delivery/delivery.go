package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"quickship/internal/entities"
	"quickship/internal/repository"
	"quickship/internal/service/assignment"
	deliveryservice "quickship/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// lockTimeout ограничивает ожидание row-lock'а: по истечении Postgres
// возвращает 55P03 и запрос завершается retryable Busy, а не висит.
const lockTimeout = "3s"

const deliveryColumns = `
	id, tracking_code, owner_id, driver_id, status, priority,
	pickup_street, pickup_city, pickup_state, pickup_zip, pickup_lat, pickup_lng,
	drop_street, drop_city, drop_state, drop_zip, drop_lat, drop_lng,
	customer_name, customer_phone, customer_email,
	weight_kg, description,
	distance_km, total_price, estimated_delivery_time,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, d *entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (
			tracking_code, owner_id, status, priority,
			pickup_street, pickup_city, pickup_state, pickup_zip, pickup_lat, pickup_lng,
			drop_street, drop_city, drop_state, drop_zip, drop_lat, drop_lng,
			customer_name, customer_phone, customer_email,
			weight_kg, description,
			distance_km, total_price, estimated_delivery_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING` + deliveryColumns

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		d.TrackingCode,
		d.OwnerID,
		d.Status.String(),
		d.Priority.String(),
		d.PickupAddress.Street,
		d.PickupAddress.City,
		d.PickupAddress.State,
		d.PickupAddress.ZipCode,
		d.PickupAddress.Coordinates.Lat,
		d.PickupAddress.Coordinates.Lng,
		d.DropAddress.Street,
		d.DropAddress.City,
		d.DropAddress.State,
		d.DropAddress.ZipCode,
		d.DropAddress.Coordinates.Lat,
		d.DropAddress.Coordinates.Lng,
		d.Customer.Name,
		d.Customer.Phone,
		d.Customer.Email,
		d.Package.WeightKg,
		d.Package.Description,
		d.DistanceKm,
		d.TotalPrice,
		d.EstimatedDeliveryTime,
	).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("tracking code collision: %w", err)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	deliveryDomain, err := r.getOne(ctx, query, id)
	if err != nil {
		return nil, err
	}

	history, err := r.loadHistory(ctx, deliveryDomain.ID)
	if err != nil {
		return nil, err
	}
	deliveryDomain.StatusHistory = history

	return deliveryDomain, nil
}

func (r *Repository) GetByTrackingCode(ctx context.Context, code string) (*entities.Delivery, error) {
	query := `SELECT` + deliveryColumns + ` FROM deliveries WHERE tracking_code = $1`

	deliveryDomain, err := r.getOne(ctx, query, code)
	if err != nil {
		return nil, err
	}

	history, err := r.loadHistory(ctx, deliveryDomain.ID)
	if err != nil {
		return nil, err
	}
	deliveryDomain.StatusHistory = history

	return deliveryDomain, nil
}

// GetByIDForUpdate берет row-lock доставки в текущей транзакции.
// Вызывается только внутри txManager.Do, иначе SET LOCAL бессмысленен.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	_, err := r.querier.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", lockTimeout))
	if err != nil {
		return nil, fmt.Errorf("set lock timeout: %w", err)
	}

	query := `SELECT` + deliveryColumns + ` FROM deliveries WHERE id = $1 FOR UPDATE`

	deliveryDomain, err := r.getOne(ctx, query, id)
	if err != nil {
		if errors.Is(err, deliveryservice.ErrDeliveryNotFound) {
			return nil, err
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrLockNotAvailable) {
			return nil, deliveryservice.ErrDeliveryBusy
		}
		return nil, err
	}

	return deliveryDomain, nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns).
		From("deliveries")

	// опциональные фильтры
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.OwnerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": *filter.DriverID})
	}

	// стабильный порядок: при равном created_at решает id
	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]entities.Delivery, 0, filter.Limit)
	for rows.Next() {
		var deliveryDB DeliveryDB
		if err := rows.Scan(scanTargets(&deliveryDB)...); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(&deliveryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list rows error: %w", err)
	}

	return deliveries, nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status entities.DeliveryStatusType) error {
	query := `
		UPDATE deliveries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected delivery repository set status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return deliveryservice.ErrDeliveryNotFound
	}

	return nil
}

// AssignDriver одноразовая привязка водителя: guard в WHERE гарантирует,
// что второй claim не перезапишет первый даже вне row-lock'а.
func (r *Repository) AssignDriver(ctx context.Context, id, driverID int64) error {
	query := `
		UPDATE deliveries
		SET driver_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4 AND driver_id IS NULL
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		id,
		driverID,
		entities.DeliveryAccepted.String(),
		entities.DeliveryCreated.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository assign error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return assignment.ErrAlreadyAssigned
	}

	return nil
}

func (r *Repository) AppendHistory(ctx context.Context, deliveryID int64, entry entities.StatusHistoryEntry) error {
	query := `
		INSERT INTO delivery_status_history (delivery_id, status, occurred_at, notes, actor_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		deliveryID,
		entry.Status.String(),
		entry.Timestamp,
		entry.Notes,
		entry.ActorID,
	)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository append history error: %w", err)
	}

	return nil
}

func (r *Repository) Stats(ctx context.Context, ownerID *int64) (*entities.DeliveryStats, error) {
	builder := qb.
		Select("status", "COUNT(*)").
		From("deliveries").
		GroupBy("status").
		OrderBy("status")

	if ownerID != nil {
		builder = builder.Where(sq.Eq{"owner_id": *ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository stats error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository stats error: %w", err)
	}
	defer rows.Close()

	stats := entities.DeliveryStats{
		StatusBreakdown: make([]entities.StatusCount, 0, 6),
	}
	for rows.Next() {
		var countDB StatusCountDB
		if err := rows.Scan(&countDB.Status, &countDB.Count); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository stats scan error: %w", err)
		}
		stats.StatusBreakdown = append(stats.StatusBreakdown, entities.StatusCount{
			Status: entities.DeliveryStatusType(countDB.Status),
			Count:  countDB.Count,
		})
		stats.TotalDeliveries += countDB.Count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository stats rows error: %w", err)
	}

	return &stats, nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Delivery, error) {
	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) loadHistory(ctx context.Context, deliveryID int64) ([]entities.StatusHistoryEntry, error) {
	query := `
		SELECT id, delivery_id, status, occurred_at, notes, actor_id
		FROM delivery_status_history
		WHERE delivery_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository history error: %w", err)
	}
	defer rows.Close()

	history := make([]entities.StatusHistoryEntry, 0, 5)
	for rows.Next() {
		var historyDB StatusHistoryDB
		err := rows.Scan(
			&historyDB.ID,
			&historyDB.DeliveryID,
			&historyDB.Status,
			&historyDB.OccurredAt,
			&historyDB.Notes,
			&historyDB.ActorID,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository history scan error: %w", err)
		}
		history = append(history, ToHistoryDomain(&historyDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository history rows error: %w", err)
	}

	return history, nil
}

func scanTargets(d *DeliveryDB) []interface{} {
	return []interface{}{
		&d.ID, &d.TrackingCode, &d.OwnerID, &d.DriverID, &d.Status, &d.Priority,
		&d.PickupStreet, &d.PickupCity, &d.PickupState, &d.PickupZip, &d.PickupLat, &d.PickupLng,
		&d.DropStreet, &d.DropCity, &d.DropState, &d.DropZip, &d.DropLat, &d.DropLng,
		&d.CustomerName, &d.CustomerPhone, &d.CustomerEmail,
		&d.WeightKg, &d.Description,
		&d.DistanceKm, &d.TotalPrice, &d.EstimatedDeliveryTime,
		&d.CreatedAt, &d.UpdatedAt,
	}
}
