package payment

import "time"

type PaymentDB struct {
	ID             int64
	DeliveryID     int64
	ClientID       int64
	IntentID       string
	Method         string
	Status         string
	Amount         float64
	Currency       string
	TransactionFee float64
	NetAmount      float64
	FailureReason  string
	DueDate        time.Time
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
