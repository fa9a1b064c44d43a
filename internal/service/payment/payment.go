package payment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

const (
	// DefaultDeliveryRate подставляется когда ставка не задана на доставке.
	DefaultDeliveryRate = 5000.0

	// DueDateOffset срок оплаты: дата доставки + 30 дней.
	DueDateOffset = 30 * 24 * time.Hour
)

// Synchronizer держит производный платежный статус консистентным с жизненным
// циклом доставки и внешним платежным шлюзом. Локальное состояние авторитетно:
// отказы шлюза на best-effort путях логируются и не блокируют локальные записи.
type Synchronizer struct {
	log        synchronizerLogger
	repository Repository
	deliveries Deliveries
	clients    Clients
	gateway    Gateway
	fees       FeeFactory
	txManager  TxManager
}

func New(
	log synchronizerLogger,
	repository Repository,
	deliveries Deliveries,
	clients Clients,
	gateway Gateway,
	fees FeeFactory,
	txManager TxManager,
) *Synchronizer {
	return &Synchronizer{
		log:        log,
		repository: repository,
		deliveries: deliveries,
		clients:    clients,
		gateway:    gateway,
		fees:       fees,
		txManager:  txManager,
	}
}

// ComputePaymentView чистая производная для платежной сводки клиента,
// без записей. Отмененные доставки не биллятся и исключаются целиком.
func (s *Synchronizer) ComputePaymentView(d *entities.Delivery, now time.Time) *entities.PaymentView {
	if d == nil || d.Status == entities.DeliveryCancelled {
		return nil
	}

	amount := d.Rate
	if amount <= 0 {
		amount = DefaultDeliveryRate
	}

	basis := d.CreatedAt
	if d.DeliveredAt != nil {
		basis = *d.DeliveredAt
	}
	dueDate := basis.Add(DueDateOffset)

	status := entities.PaymentPending
	switch {
	case d.PaymentStatus == entities.PaymentPaid:
		status = entities.PaymentPaid
	case dueDate.Before(now) && d.Status == entities.DeliveryCompleted:
		status = entities.PaymentOverdue
	}

	return &entities.PaymentView{
		DeliveryID: d.ID,
		Amount:     amount,
		DueDate:    dueDate,
		Status:     status,
	}
}

// GetClientPaymentSummary платежная сводка по всем биллабельным доставкам клиента.
func (s *Synchronizer) GetClientPaymentSummary(ctx context.Context, clientID int64) ([]entities.PaymentView, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClientID
	}

	deliveries, err := s.deliveries.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client deliveries: %w", err)
	}

	now := time.Now().UTC()
	views := make([]entities.PaymentView, 0, len(deliveries))
	for i := range deliveries {
		view := s.ComputePaymentView(&deliveries[i], now)
		if view != nil {
			views = append(views, *view)
		}
	}
	return views, nil
}

// CreatePayment создает платеж по доставке: интент для карт, источник с
// redirect для e-wallet. Второй неотмененный платеж по доставке запрещен.
func (s *Synchronizer) CreatePayment(ctx context.Context, deliveryID int64, method entities.PaymentMethodType) (*entities.PaymentCheckout, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidMethod(method) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}

	d, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if d.Status == entities.DeliveryCancelled {
		return nil, ErrDeliveryCancelled
	}

	// Дубликат отсекаем до похода в шлюз, иначе интент останется сиротой.
	// Уникальный индекс в репозитории остается страховкой от гонки.
	existing, err := s.repository.GetByDeliveryID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	for i := range existing {
		if existing[i].Status != entities.PaymentCancelled {
			return nil, ErrPaymentAlreadyExists
		}
	}

	amount := d.Rate
	if amount <= 0 {
		amount = DefaultDeliveryRate
	}

	checkout := entities.PaymentCheckout{}
	if method == entities.MethodCard {
		intent, err := s.gateway.CreatePaymentIntent(ctx, amount, entities.DefaultCurrency, map[string]string{
			"delivery_id": strconv.FormatInt(deliveryID, 10),
		})
		if err != nil {
			return nil, fmt.Errorf("create payment intent: %w", err)
		}
		checkout.IntentID = intent.ID
		checkout.ClientSecret = intent.ClientSecret
	} else {
		source, err := s.gateway.CreateSource(ctx, method, amount, entities.DefaultCurrency)
		if err != nil {
			return nil, fmt.Errorf("create payment source: %w", err)
		}
		checkout.IntentID = source.ID
		checkout.RedirectURL = source.RedirectURL
	}

	basis := d.CreatedAt
	if d.DeliveredAt != nil {
		basis = *d.DeliveredAt
	}

	created, err := s.repository.Create(ctx, entities.Payment{
		DeliveryID: deliveryID,
		ClientID:   d.ClientID,
		IntentID:   checkout.IntentID,
		Method:     method,
		Status:     entities.PaymentPending,
		Amount:     amount,
		Currency:   entities.DefaultCurrency,
		DueDate:    basis.Add(DueDateOffset),
	})
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	checkout.PaymentID = created.ID
	return &checkout, nil
}

// CancelPayment отменяет все неоплаченные платежи доставки. Вызовы шлюза
// best-effort и вне транзакции; локальная отмена batch-атомарна. Платежи
// в статусе paid не трогаются (refund вне скоупа), а платежный статус
// доставки становится cancelled только если он еще не paid.
func (s *Synchronizer) CancelPayment(ctx context.Context, deliveryID int64) error {
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}

	payments, err := s.repository.GetByDeliveryID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("get payments: %w", err)
	}

	for i := range payments {
		p := &payments[i]
		if p.Status == entities.PaymentPaid || p.Status == entities.PaymentCancelled || p.IntentID == "" {
			continue
		}
		// У e-wallet платежей в IntentID лежит id источника, у шлюза нет
		// отмены источников. Хватает локальной отмены.
		if p.Method != entities.MethodCard {
			continue
		}
		err := s.gateway.CancelPaymentIntent(ctx, p.IntentID)
		if err != nil {
			s.log.Warn("gateway payment cancellation failed, cancelling locally",
				logger.NewField("payment", p.ID),
				logger.NewField("intent", p.IntentID),
				logger.NewField("error", err),
			)
		}
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repository.CancelUnpaidByDeliveryID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("cancel payments: %w", err)
		}

		d, err := s.deliveries.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if d.PaymentStatus != entities.PaymentPaid {
			err = s.deliveries.SetPaymentStatus(ctx, deliveryID, entities.PaymentCancelled)
			if err != nil {
				return fmt.Errorf("update delivery payment status: %w", err)
			}
		}
		return nil
	})
	return err
}

// ReconcileClientPaymentStatus пересчитывает платежное состояние клиента:
// просроченные pending платежи помечаются overdue одним batch-обновлением,
// и право бронирования выводится строго как canBookTrucks == (overdue == 0).
func (s *Synchronizer) ReconcileClientPaymentStatus(ctx context.Context, clientID int64) (*entities.Reconciliation, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClientID
	}

	reconciliation := entities.Reconciliation{ClientID: clientID}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		_, err := s.repository.MarkOverdueDueByClient(ctx, clientID, now)
		if err != nil {
			return fmt.Errorf("mark overdue payments: %w", err)
		}

		overdueCount, err := s.repository.CountOverdueByClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("count overdue payments: %w", err)
		}

		standing := entities.StandingCurrent
		canBook := overdueCount == 0
		if overdueCount > 0 {
			standing = entities.StandingOverdue
		}

		err = s.clients.SetPaymentStanding(ctx, clientID, standing, canBook)
		if err != nil {
			return fmt.Errorf("update client standing: %w", err)
		}

		reconciliation.OverdueCount = overdueCount
		reconciliation.CanBookTrucks = canBook
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reconciliation, nil
}

// ProcessGatewayCompletion обрабатывает исход платежа по данным шлюза.
// Успех: комиссия по способу оплаты, платеж paid, платежный статус доставки
// paid, затем сверка клиента. Отказ: платеж failed, доставка не трогается.
func (s *Synchronizer) ProcessGatewayCompletion(ctx context.Context, intentID string) error {
	if intentID == "" {
		return ErrInvalidIntentID
	}

	intent, err := s.gateway.GetPaymentIntent(ctx, intentID)
	if err != nil {
		return fmt.Errorf("get payment intent: %w", err)
	}

	pmt, err := s.repository.GetByIntentID(ctx, intentID)
	if err != nil {
		return fmt.Errorf("get payment by intent: %w", err)
	}

	switch intent.Status {
	case entities.IntentSucceeded:
		method := entities.PaymentMethodType(intent.PaymentMethod)
		if method == "" {
			method = pmt.Method
		}
		fee, net := s.fees.Fee(pmt.Amount, method)
		now := time.Now().UTC()

		paidStatus := entities.PaymentPaid
		paymentModify := entities.PaymentModify{
			ID:             &pmt.ID,
			Method:         &method,
			Status:         &paidStatus,
			TransactionFee: &fee,
			NetAmount:      &net,
			PaidAt:         &now,
		}

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			_, err := s.repository.MarkPaid(ctx, paymentModify)
			if err != nil {
				return fmt.Errorf("mark payment paid: %w", err)
			}

			err = s.deliveries.SetPaymentStatus(ctx, pmt.DeliveryID, entities.PaymentPaid)
			if err != nil {
				return fmt.Errorf("update delivery payment status: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		// Сверка производная: платеж уже зафиксирован, отказ только логируем.
		_, err = s.ReconcileClientPaymentStatus(ctx, pmt.ClientID)
		if err != nil {
			s.log.Error("client reconciliation after payment failed",
				logger.NewField("client", pmt.ClientID),
				logger.NewField("error", err),
			)
		}
		return nil

	case entities.IntentAwaitingMethod, entities.IntentCancelled:
		reason := intent.FailureReason
		if reason == "" {
			reason = fmt.Sprintf("payment %s at gateway", intent.Status)
		}
		err = s.repository.MarkFailed(ctx, pmt.ID, reason)
		if err != nil {
			return fmt.Errorf("mark payment failed: %w", err)
		}
		return nil

	default:
		// processing и прочие промежуточные статусы: ждем следующего события
		s.log.Info("payment intent not finalized yet",
			logger.NewField("intent", intentID),
			logger.NewField("status", intent.Status.String()),
		)
		return nil
	}
}

// ReconcileDueClients сверяет всех клиентов с просроченными pending платежами.
func (s *Synchronizer) ReconcileDueClients(ctx context.Context) (int64, error) {
	clientIDs, err := s.repository.GetClientIDsWithDuePending(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("list clients with due payments: %w", err)
	}

	var reconciled int64
	for _, clientID := range clientIDs {
		_, err := s.ReconcileClientPaymentStatus(ctx, clientID)
		if err != nil {
			s.log.Error("client reconciliation failed",
				logger.NewField("client", clientID),
				logger.NewField("error", err),
			)
			continue
		}
		reconciled++
	}
	return reconciled, nil
}

// BackfillPayments ленивый проход "generate from deliveries": создает pending
// платежи для завершенных доставок без активного платежа.
func (s *Synchronizer) BackfillPayments(ctx context.Context) (int64, error) {
	created, err := s.repository.BackfillFromCompletedDeliveries(ctx, DueDateOffset)
	if err != nil {
		return 0, fmt.Errorf("backfill payments: %w", err)
	}
	return created, nil
}
