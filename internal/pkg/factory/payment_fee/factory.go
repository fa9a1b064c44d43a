package payment_fee

import (
	"math"

	"fleet/internal/entities"
)

const (
	cardRate    = 0.035
	eWalletRate = 0.025
	defaultRate = 0.035
)

type FeeFactory struct{}

func New() *FeeFactory {
	return &FeeFactory{}
}

// Rate комиссия шлюза по способу оплаты: карты 3.5%, e-wallet 2.5%.
func (f *FeeFactory) Rate(method entities.PaymentMethodType) float64 {
	switch method {
	case entities.MethodCard:
		return cardRate
	case entities.MethodGCash, entities.MethodGrabPay, entities.MethodPayMaya:
		return eWalletRate
	default:
		return defaultRate
	}
}

// Fee возвращает комиссию и чистую сумму, округленные до сентаво.
func (f *FeeFactory) Fee(amount float64, method entities.PaymentMethodType) (fee, net float64) {
	fee = roundCentavo(amount * f.Rate(method))
	net = roundCentavo(amount - fee)
	return fee, net
}

func roundCentavo(v float64) float64 {
	return math.Round(v*100) / 100
}
