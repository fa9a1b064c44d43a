//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_cancel_post_test
package payment_cancel_post

import (
	"context"

	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelPayment(ctx context.Context, deliveryID int64) error
}
