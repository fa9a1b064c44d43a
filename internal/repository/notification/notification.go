package notification

import (
	"context"
	"fmt"

	"fleet/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, type, title, message, delivery_id, status, action_required, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.querier.Exec(ctx, query,
		notificationEntity.RecipientID,
		notificationEntity.Type,
		notificationEntity.Title,
		notificationEntity.Message,
		notificationEntity.DeliveryID,
		notificationEntity.Status,
		notificationEntity.ActionRequired,
		notificationEntity.Priority.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected notification repository create error: %w", err)
	}
	return nil
}
