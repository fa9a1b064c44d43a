//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	GetByDeliveryID(ctx context.Context, deliveryID int64) ([]entities.Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*entities.Payment, error)

	CancelUnpaidByDeliveryID(ctx context.Context, deliveryID int64) (int64, error)
	MarkPaid(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error)
	MarkFailed(ctx context.Context, paymentID int64, reason string) error

	MarkOverdueDueByClient(ctx context.Context, clientID int64, now time.Time) (int64, error)
	CountOverdueByClient(ctx context.Context, clientID int64) (int64, error)
	GetClientIDsWithDuePending(ctx context.Context, now time.Time) ([]int64, error)
	BackfillFromCompletedDeliveries(ctx context.Context, dueDateOffset time.Duration) (int64, error)
}

type Deliveries interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByClientID(ctx context.Context, clientID int64) ([]entities.Delivery, error)
	SetPaymentStatus(ctx context.Context, deliveryID int64, status entities.PaymentStatusType) error
}

type Clients interface {
	SetPaymentStanding(ctx context.Context, clientID int64, standing entities.PaymentStandingType, canBookTrucks bool) error
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*entities.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*entities.PaymentIntent, error)
	CreateSource(ctx context.Context, sourceType entities.PaymentMethodType, amount float64, currency string) (*entities.PaymentSource, error)
	CancelPaymentIntent(ctx context.Context, id string) error
}

type FeeFactory interface {
	Fee(amount float64, method entities.PaymentMethodType) (fee, net float64)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type synchronizerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
