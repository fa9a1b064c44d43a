//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_payments_get_test
package client_payments_get

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
	GetClientPaymentSummary(ctx context.Context, clientID int64) ([]entities.PaymentView, error)
	ReconcileClientPaymentStatus(ctx context.Context, clientID int64) (*entities.Reconciliation, error)
}
