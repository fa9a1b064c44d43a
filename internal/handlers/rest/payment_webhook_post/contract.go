//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_webhook_post_test
package payment_webhook_post

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
	ProcessGatewayCompletion(ctx context.Context, intentID string) error
}
