package payment

import "fleet/internal/entities"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:             p.ID,
		DeliveryID:     p.DeliveryID,
		ClientID:       p.ClientID,
		IntentID:       p.IntentID,
		Method:         entities.PaymentMethodType(p.Method),
		Status:         entities.PaymentStatusType(p.Status),
		Amount:         p.Amount,
		Currency:       p.Currency,
		TransactionFee: p.TransactionFee,
		NetAmount:      p.NetAmount,
		FailureReason:  p.FailureReason,
		DueDate:        p.DueDate,
		PaidAt:         p.PaidAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToDomainList(payments []PaymentDB) []entities.Payment {
	result := make([]entities.Payment, 0, len(payments))
	for i := range payments {
		result = append(result, *ToDomain(&payments[i]))
	}
	return result
}
