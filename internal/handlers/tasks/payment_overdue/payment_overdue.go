package payment_overdue

import (
	"context"
	"time"

	"fleet/pkg/logger"
)

type Service interface {
	BackfillPayments(ctx context.Context) (int64, error)
	ReconcileDueClients(ctx context.Context) (int64, error)
}

type PaymentOverdue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	warmedUp bool
}

func NewPaymentOverdue(log logger.Logger, service Service, interval time.Duration) *PaymentOverdue {
	return &PaymentOverdue{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentOverdue) TTL() time.Duration {
	return p.interval
}

func (p *PaymentOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	// На прогреве досоздаем платежи по завершенным доставкам,
	// у которых их еще нет, дальше только сверяем просрочку.
	if !p.warmedUp {
		created, err := p.service.BackfillPayments(ctxWithTimeout)
		if err != nil {
			return err
		}
		if created > 0 {
			p.log.With(
				logger.NewField("created_payments", created),
			).Info("payment backfill")
		}
		p.warmedUp = true
	}

	reconciled, err := p.service.ReconcileDueClients(ctxWithTimeout)

	if reconciled > 0 {
		p.log.With(
			logger.NewField("reconciled_clients", reconciled),
		).Info("payment overdue reconciliation")
	}

	return err
}

func (p *PaymentOverdue) Info() string {
	return "payment overdue reconciliation"
}
