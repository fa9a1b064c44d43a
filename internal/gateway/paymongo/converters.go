package paymongo

import "fleet/internal/entities"

func toIntentDomain(resp *intentResponse) *entities.PaymentIntent {
	if resp == nil {
		return nil
	}

	intent := entities.PaymentIntent{
		ID:           resp.Data.ID,
		Status:       entities.IntentStatusType(resp.Data.Attributes.Status),
		ClientSecret: resp.Data.Attributes.ClientKey,
	}

	if resp.Data.Attributes.LastPaymentER != nil {
		intent.FailureReason = resp.Data.Attributes.LastPaymentER.FailedMessage
		if intent.FailureReason == "" {
			intent.FailureReason = resp.Data.Attributes.LastPaymentER.FailedCode
		}
	}

	if len(resp.Data.Attributes.Payments) > 0 {
		intent.PaymentMethod = resp.Data.Attributes.Payments[0].Attributes.Source.Type
	}

	return &intent
}

func toSourceDomain(resp *sourceResponse) *entities.PaymentSource {
	if resp == nil {
		return nil
	}
	return &entities.PaymentSource{
		ID:          resp.Data.ID,
		Status:      resp.Data.Attributes.Status,
		RedirectURL: resp.Data.Attributes.Redirect.CheckoutURL,
	}
}

// toCentavos переводит сумму в минорные единицы, PayMongo принимает только их.
func toCentavos(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
