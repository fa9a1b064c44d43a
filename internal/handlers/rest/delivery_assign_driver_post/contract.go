//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_assign_driver_post_test
package delivery_assign_driver_post

import (
	"context"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignRandomDriver(ctx context.Context, deliveryID int64) (*entities.DriverAssignment, error)
}
