package client

import "fleet/internal/entities"

func ToDomain(c *ClientDB) *entities.Client {
	if c == nil {
		return nil
	}
	return &entities.Client{
		ID:              c.ID,
		Name:            c.Name,
		PaymentStanding: entities.PaymentStandingType(c.PaymentStanding),
		CanBookTrucks:   c.CanBookTrucks,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
