//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_create_post_test
package payment_create_post

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
	CreatePayment(ctx context.Context, deliveryID int64, method entities.PaymentMethodType) (*entities.PaymentCheckout, error)
}
