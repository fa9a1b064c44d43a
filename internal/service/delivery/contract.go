//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, modify entities.DeliveryStatusModify) (*entities.Delivery, error)
	AssignDriver(ctx context.Context, deliveryID, driverID int64, driverName string) error
}

type FleetService interface {
	AddTruckDeliveryStats(ctx context.Context, truckID int64, distanceKm float64) error
	RestoreTruck(ctx context.Context, truckID, finishedDeliveryID int64) error
	RestoreDriver(ctx context.Context, driverID int64) error
	RestoreHelper(ctx context.Context, helperID int64) error
	GetActiveDrivers(ctx context.Context) ([]entities.Driver, error)
}

type PaymentService interface {
	CancelPayment(ctx context.Context, deliveryID int64) error
}

type Notifier interface {
	Create(ctx context.Context, notification entities.Notification) error
}

type TransitionFactory interface {
	GetTransition(target entities.DeliveryStatusType) (*Transition, error)
	IsAllowed(from, to entities.DeliveryStatusType) bool
	BuildModify(deliveryID int64, t *Transition, hasHelper bool, location *entities.GeoPoint, now time.Time) entities.DeliveryStatusModify
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type coordinatorLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
