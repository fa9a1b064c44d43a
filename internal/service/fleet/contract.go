//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_test
package fleet

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	IncrementTruckStats(ctx context.Context, truckID int64, distanceKm float64) error
	CountActiveDeliveriesByTruck(ctx context.Context, truckID, excludeDeliveryID int64) (int64, error)

	UpdateTruck(ctx context.Context, truckModifyEntity entities.TruckModify) (*entities.Truck, error)
	UpdateDriver(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
	UpdateHelper(ctx context.Context, helperModifyEntity entities.HelperModify) (*entities.Helper, error)

	GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error)
	GetActiveDrivers(ctx context.Context) ([]entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
