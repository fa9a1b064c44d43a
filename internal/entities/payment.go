package entities

import "time"

type Payment struct {
	ID             int64
	DeliveryID     int64
	ClientID       int64
	IntentID       string
	Method         PaymentMethodType
	Status         PaymentStatusType
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

type PaymentStatusType string

const (
	PaymentPending   PaymentStatusType = "pending"
	PaymentPaid      PaymentStatusType = "paid"
	PaymentOverdue   PaymentStatusType = "overdue"
	PaymentFailed    PaymentStatusType = "failed"
	PaymentCancelled PaymentStatusType = "cancelled"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type PaymentMethodType string

const (
	MethodCard    PaymentMethodType = "card"
	MethodGCash   PaymentMethodType = "gcash"
	MethodGrabPay PaymentMethodType = "grab_pay"
	MethodPayMaya PaymentMethodType = "paymaya"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

const DefaultCurrency = "PHP"

// PaymentModify частичное обновление платежа, репозиторий пишет только заданные поля.
type PaymentModify struct {
	ID             *int64
	IntentID       *string
	Method         *PaymentMethodType
	Status         *PaymentStatusType
	TransactionFee *float64
	NetAmount      *float64
	FailureReason  *string
	PaidAt         *time.Time
}

// PaymentView производное представление платежа по доставке, без записи в БД.
type PaymentView struct {
	DeliveryID int64
	Amount     float64
	DueDate    time.Time
	Status     PaymentStatusType
}

// Reconciliation агрегированное платежное состояние клиента после сверки.
type Reconciliation struct {
	ClientID      int64
	OverdueCount  int64
	CanBookTrucks bool
}

// PaymentCheckout результат создания платежа: секрет интента для карт
// либо redirect URL для e-wallet источников.
type PaymentCheckout struct {
	PaymentID    int64
	IntentID     string
	ClientSecret string
	RedirectURL  string
}
