package payment

import "fleet/internal/entities"

func isValidMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.MethodCard, entities.MethodGCash, entities.MethodGrabPay, entities.MethodPayMaya:
		return true
	default:
		return false
	}
}
