package paymongo

// Структуры запросов и ответов PayMongo API. Суммы везде в сентаво.

type intentCreateRequest struct {
	Data intentCreateData `json:"data"`
}

type intentCreateData struct {
	Attributes intentCreateAttributes `json:"attributes"`
}

type intentCreateAttributes struct {
	Amount               int64             `json:"amount"`
	Currency             string            `json:"currency"`
	PaymentMethodAllowed []string          `json:"payment_method_allowed"`
	CaptureType          string            `json:"capture_type"`
	Metadata             map[string]string `json:"metadata,omitempty"`
}

type sourceCreateRequest struct {
	Data sourceCreateData `json:"data"`
}

type sourceCreateData struct {
	Attributes sourceCreateAttributes `json:"attributes"`
}

type sourceCreateAttributes struct {
	Type     string         `json:"type"`
	Amount   int64          `json:"amount"`
	Currency string         `json:"currency"`
	Redirect sourceRedirect `json:"redirect"`
}

type sourceRedirect struct {
	Success string `json:"success"`
	Failed  string `json:"failed"`
}

type intentResponse struct {
	Data intentResponseData `json:"data"`
}

type intentResponseData struct {
	ID         string                   `json:"id"`
	Attributes intentResponseAttributes `json:"attributes"`
}

type intentResponseAttributes struct {
	Status        string             `json:"status"`
	ClientKey     string             `json:"client_key"`
	LastPaymentER *lastPaymentError  `json:"last_payment_error"`
	Payments      []intentPaymentRef `json:"payments"`
}

type lastPaymentError struct {
	FailedCode    string `json:"failed_code"`
	FailedMessage string `json:"failed_message"`
}

type intentPaymentRef struct {
	Attributes intentPaymentAttributes `json:"attributes"`
}

type intentPaymentAttributes struct {
	Source intentPaymentSource `json:"source"`
}

type intentPaymentSource struct {
	Type string `json:"type"`
}

type sourceResponse struct {
	Data sourceResponseData `json:"data"`
}

type sourceResponseData struct {
	ID         string                   `json:"id"`
	Attributes sourceResponseAttributes `json:"attributes"`
}

type sourceResponseAttributes struct {
	Status   string               `json:"status"`
	Redirect sourceRedirectStatus `json:"redirect"`
}

type sourceRedirectStatus struct {
	CheckoutURL string `json:"checkout_url"`
}

type apiErrorResponse struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}
