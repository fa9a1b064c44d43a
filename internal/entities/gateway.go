package entities

// PaymentIntent состояние платежного интента на стороне шлюза.
type PaymentIntent struct {
	ID            string
	Status        IntentStatusType
	ClientSecret  string
	PaymentMethod string
	FailureReason string
}

type IntentStatusType string

const (
	IntentAwaitingMethod IntentStatusType = "awaiting_payment_method"
	IntentProcessing     IntentStatusType = "processing"
	IntentSucceeded      IntentStatusType = "succeeded"
	IntentCancelled      IntentStatusType = "cancelled"
)

func (s IntentStatusType) String() string {
	return string(s)
}

// PaymentSource e-wallet источник оплаты с redirect-подтверждением.
type PaymentSource struct {
	ID          string
	Status      string
	RedirectURL string
}
