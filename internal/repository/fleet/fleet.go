package fleet

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/service/fleet"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// IncrementTruckStats атомарный инкремент на стороне БД: конкурентные
// доставки на одном грузовике не теряют обновления.
func (r *Repository) IncrementTruckStats(ctx context.Context, truckID int64, distanceKm float64) error {
	query := `
		UPDATE trucks
		SET total_deliveries = total_deliveries + 1,
			total_kilometers = total_kilometers + $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, truckID, distanceKm)
	if err != nil {
		return fmt.Errorf("unexpected fleet repository increment stats error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fleet.ErrTruckNotFound
	}
	return nil
}

func (r *Repository) CountActiveDeliveriesByTruck(ctx context.Context, truckID, excludeDeliveryID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE truck_id = $1
			AND id != $2
			AND status NOT IN ('delivered', 'completed', 'cancelled')
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, truckID, excludeDeliveryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected fleet repository count active deliveries error: %w", err)
	}
	return count, nil
}

func (r *Repository) UpdateTruck(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error) {
	builder := qb.
		Update("trucks")

	if truckModifyEntity.Status != nil {
		builder = builder.Set("status", truckModifyEntity.Status.String())
	}
	if truckModifyEntity.CurrentDeliveryID != nil {
		// ноль очищает привязку к доставке
		if *truckModifyEntity.CurrentDeliveryID == 0 {
			builder = builder.Set("current_delivery_id", nil)
		} else {
			builder = builder.Set("current_delivery_id", *truckModifyEntity.CurrentDeliveryID)
		}
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": truckModifyEntity.ID}).
		Suffix("RETURNING id, plate_number, status, total_deliveries, total_kilometers, current_delivery_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository update truck error: %w", err)
	}

	var truckModel TruckDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&truckModel.ID,
			&truckModel.PlateNumber,
			&truckModel.Status,
			&truckModel.TotalDeliveries,
			&truckModel.TotalKilometers,
			&truckModel.CurrentDeliveryID,
			&truckModel.CreatedAt,
			&truckModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected fleet repository update truck error: %w", err)
	}

	return ToTruckDomain(&truckModel), nil
}

func (r *Repository) UpdateDriver(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	builder := qb.
		Update("drivers")

	if driverModifyEntity.Name != nil {
		builder = builder.Set("name", *driverModifyEntity.Name)
	}
	if driverModifyEntity.Phone != nil {
		builder = builder.Set("phone", *driverModifyEntity.Phone)
	}
	if driverModifyEntity.Status != nil {
		builder = builder.Set("status", driverModifyEntity.Status.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyEntity.ID}).
		Suffix("RETURNING id, name, phone, status, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository update driver error: %w", err)
	}

	var driverModel DriverDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected fleet repository update driver error: %w", err)
	}

	return ToDriverDomain(&driverModel), nil
}

func (r *Repository) UpdateHelper(ctx context.Context, helperModifyEntity entities.HelperModify) (*entities.Helper, error) {
	builder := qb.
		Update("helpers")

	if helperModifyEntity.Name != nil {
		builder = builder.Set("name", *helperModifyEntity.Name)
	}
	if helperModifyEntity.Status != nil {
		builder = builder.Set("status", helperModifyEntity.Status.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": helperModifyEntity.ID}).
		Suffix("RETURNING id, name, status, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository update helper error: %w", err)
	}

	var helperModel HelperDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&helperModel.ID,
			&helperModel.Name,
			&helperModel.Status,
			&helperModel.CreatedAt,
			&helperModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrHelperNotFound
		}
		return nil, fmt.Errorf("unexpected fleet repository update helper error: %w", err)
	}

	return ToHelperDomain(&helperModel), nil
}

func (r *Repository) GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, name, phone, status, created_at, updated_at
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected fleet repository get driver error: %w", err)
	}

	return ToDriverDomain(&driverModel), nil
}

func (r *Repository) GetActiveDrivers(ctx context.Context) ([]entities.Driver, error) {
	query := `
		SELECT id, name, phone, status, created_at, updated_at
		FROM drivers
		WHERE status = 'active'
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository get active drivers error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.Status,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected fleet repository get active drivers error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected fleet repository get active drivers error: %w", err)
	}

	return ToDriverDomainList(driverModels), nil
}
