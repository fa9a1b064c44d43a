package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/service/payment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	query := `
		SELECT id, name, payment_standing, can_book_trucks, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var model ClientDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&model.ID,
			&model.Name,
			&model.PaymentStanding,
			&model.CanBookTrucks,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected client repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) SetPaymentStanding(ctx context.Context, clientID int64, standing entities.PaymentStandingType, canBookTrucks bool) error {
	query := `
		UPDATE clients
		SET payment_standing = $2, can_book_trucks = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, clientID, standing.String(), canBookTrucks)
	if err != nil {
		return fmt.Errorf("unexpected client repository set standing error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return payment.ErrClientNotFound
	}
	return nil
}
