package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, client_id, truck_id, driver_id, helper_id, driver_name,
		status, payment_status, rate, distance_km, awaiting_client_confirmation,
		last_lat, last_lng,
		accepted_at, started_at, picked_up_at, delivered_at, driver_completed_at,
		completed_at, final_completed_at, cancelled_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	var deliveryModel DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, id), &deliveryModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE client_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyclient error: %w", err)
	}
	defer rows.Close()

	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var deliveryModel DeliveryDB
		err := scanDelivery(rows, &deliveryModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository getbyclient error: %w", err)
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyclient error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

// UpdateStatus применяет переход статуса одной атомарной записью: статус,
// зеркальные статусы экипажа, таймстемпы перехода и координаты.
func (r *Repository) UpdateStatus(ctx context.Context, modify entities.DeliveryStatusModify) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.PaymentStatus != nil {
		builder = builder.Set("payment_status", modify.PaymentStatus.String())
	}
	if modify.DriverStatus != nil {
		builder = builder.Set("driver_status", modify.DriverStatus.String())
	}
	if modify.HelperStatus != nil {
		builder = builder.Set("helper_status", modify.HelperStatus.String())
	}
	if modify.AwaitingClientConfirmation != nil {
		builder = builder.Set("awaiting_client_confirmation", *modify.AwaitingClientConfirmation)
	}
	if modify.Location != nil {
		builder = builder.
			Set("last_lat", modify.Location.Lat).
			Set("last_lng", modify.Location.Lng)
	}
	if modify.AcceptedAt != nil {
		builder = builder.Set("accepted_at", *modify.AcceptedAt)
	}
	if modify.StartedAt != nil {
		builder = builder.Set("started_at", *modify.StartedAt)
	}
	if modify.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", *modify.PickedUpAt)
	}
	if modify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *modify.DeliveredAt)
	}
	if modify.DriverCompletedAt != nil {
		builder = builder.Set("driver_completed_at", *modify.DriverCompletedAt)
	}
	if modify.CompletedAt != nil {
		builder = builder.Set("completed_at", *modify.CompletedAt)
	}
	if modify.FinalCompletedAt != nil {
		builder = builder.Set("final_completed_at", *modify.FinalCompletedAt)
	}
	if modify.CancelledAt != nil {
		builder = builder.Set("cancelled_at", *modify.CancelledAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modify.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) AssignDriver(ctx context.Context, deliveryID, driverID int64, driverName string) error {
	query := `
		UPDATE deliveries
		SET driver_id = $2,
			driver_name = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, deliveryID, driverID, driverName)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository assign driver error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *Repository) SetPaymentStatus(ctx context.Context, deliveryID int64, status entities.PaymentStatusType) error {
	query := `
		UPDATE deliveries
		SET payment_status = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, deliveryID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected delivery repository set payment status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func scanDelivery(row pgx.Row, d *DeliveryDB) error {
	return row.Scan(
		&d.ID,
		&d.ClientID,
		&d.TruckID,
		&d.DriverID,
		&d.HelperID,
		&d.DriverName,
		&d.Status,
		&d.PaymentStatus,
		&d.Rate,
		&d.DistanceKm,
		&d.AwaitingClientConfirmation,
		&d.LastLat,
		&d.LastLng,
		&d.AcceptedAt,
		&d.StartedAt,
		&d.PickedUpAt,
		&d.DeliveredAt,
		&d.DriverCompletedAt,
		&d.CompletedAt,
		&d.FinalCompletedAt,
		&d.CancelledAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}
