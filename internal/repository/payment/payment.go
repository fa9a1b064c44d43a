package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const paymentColumns = `id, delivery_id, client_id, intent_id, method, status, amount, currency,
	transaction_fee, net_amount, failure_reason, due_date, paid_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, paymentEntity entities.Payment) (*entities.Payment, error) {
	query := `
		INSERT INTO payments (delivery_id, client_id, intent_id, method, status, amount, currency, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + paymentColumns

	model, err := scanPayment(r.querier.QueryRow(ctx, query,
		paymentEntity.DeliveryID,
		paymentEntity.ClientID,
		paymentEntity.IntentID,
		paymentEntity.Method.String(),
		paymentEntity.Status.String(),
		paymentEntity.Amount,
		paymentEntity.Currency,
		paymentEntity.DueDate,
	))
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, payment.ErrPaymentAlreadyExists
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) GetByDeliveryID(ctx context.Context, deliveryID int64) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE delivery_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get by delivery error: %w", err)
	}
	defer rows.Close()

	models, err := scanPayments(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get by delivery error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) GetByIntentID(ctx context.Context, intentID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE intent_id = $1`

	model, err := scanPayment(r.querier.QueryRow(ctx, query, intentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get by intent error: %w", err)
	}

	return ToDomain(model), nil
}

// CancelUnpaidByDeliveryID гасит все неоплаченные платежи доставки,
// оплаченные записи не трогает. Возвращает число затронутых строк.
func (r *Repository) CancelUnpaidByDeliveryID(ctx context.Context, deliveryID int64) (int64, error) {
	query := `
		UPDATE payments
		SET status = 'cancelled', updated_at = NOW()
		WHERE delivery_id = $1
			AND status NOT IN ('paid', 'cancelled')
	`

	result, err := r.querier.Exec(ctx, query, deliveryID)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository cancel unpaid error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) MarkPaid(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error) {
	builder := qb.
		Update("payments").
		Set("status", entities.PaymentPaid.String())

	if paymentModifyEntity.Method != nil {
		builder = builder.Set("method", paymentModifyEntity.Method.String())
	}
	if paymentModifyEntity.TransactionFee != nil {
		builder = builder.Set("transaction_fee", *paymentModifyEntity.TransactionFee)
	}
	if paymentModifyEntity.NetAmount != nil {
		builder = builder.Set("net_amount", *paymentModifyEntity.NetAmount)
	}
	if paymentModifyEntity.PaidAt != nil {
		builder = builder.Set("paid_at", *paymentModifyEntity.PaidAt)
	} else {
		builder = builder.Set("paid_at", sq.Expr("NOW()"))
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": paymentModifyEntity.ID}).
		Suffix("RETURNING " + paymentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository mark paid error: %w", err)
	}

	model, err := scanPayment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository mark paid error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) MarkFailed(ctx context.Context, paymentID int64, reason string) error {
	query := `
		UPDATE payments
		SET status = 'failed', failure_reason = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, paymentID, reason)
	if err != nil {
		return fmt.Errorf("unexpected payment repository mark failed error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}

func (r *Repository) MarkOverdueDueByClient(ctx context.Context, clientID int64, now time.Time) (int64, error) {
	query := `
		UPDATE payments
		SET status = 'overdue', updated_at = NOW()
		WHERE client_id = $1
			AND status = 'pending'
			AND due_date < $2
	`

	result, err := r.querier.Exec(ctx, query, clientID, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository mark overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CountOverdueByClient(ctx context.Context, clientID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM payments
		WHERE client_id = $1
			AND status = 'overdue'
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, clientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository count overdue error: %w", err)
	}
	return count, nil
}

func (r *Repository) GetClientIDsWithDuePending(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
		SELECT DISTINCT client_id
		FROM payments
		WHERE status = 'pending'
			AND due_date < $1
		ORDER BY client_id
	`

	rows, err := r.querier.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get due clients error: %w", err)
	}
	defer rows.Close()

	clientIDs := make([]int64, 0, 16)
	for rows.Next() {
		var clientID int64
		err := rows.Scan(&clientID)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository get due clients error: %w", err)
		}
		clientIDs = append(clientIDs, clientID)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get due clients error: %w", err)
	}

	return clientIDs, nil
}

// BackfillFromCompletedDeliveries создает pending-платежи для завершенных
// доставок без активного платежа. Срок оплаты отсчитывается от delivered_at,
// для старых записей без отметки от created_at.
func (r *Repository) BackfillFromCompletedDeliveries(ctx context.Context, dueDateOffset time.Duration) (int64, error) {
	query := `
		INSERT INTO payments (delivery_id, client_id, method, status, amount, currency, due_date)
		SELECT d.id,
			d.client_id,
			'card',
			'pending',
			COALESCE(NULLIF(d.rate, 0), $2),
			$3,
			COALESCE(d.delivered_at, d.created_at) + make_interval(secs => $1)
		FROM deliveries d
		WHERE d.status = 'completed'
			AND d.payment_status != 'paid'
			AND NOT EXISTS (
				SELECT 1
				FROM payments p
				WHERE p.delivery_id = d.id
					AND p.status != 'cancelled'
			)
	`

	result, err := r.querier.Exec(ctx, query,
		dueDateOffset.Seconds(),
		payment.DefaultDeliveryRate,
		entities.DefaultCurrency,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository backfill error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanPayment(row pgx.Row) (*PaymentDB, error) {
	var model PaymentDB
	err := row.Scan(
		&model.ID,
		&model.DeliveryID,
		&model.ClientID,
		&model.IntentID,
		&model.Method,
		&model.Status,
		&model.Amount,
		&model.Currency,
		&model.TransactionFee,
		&model.NetAmount,
		&model.FailureReason,
		&model.DueDate,
		&model.PaidAt,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

func scanPayments(rows pgx.Rows) ([]PaymentDB, error) {
	models := make([]PaymentDB, 0, 8)
	for rows.Next() {
		model, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, *model)
	}
	return models, rows.Err()
}
