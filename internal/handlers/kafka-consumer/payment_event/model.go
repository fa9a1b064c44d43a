package payment_event

// gatewayEvent повторяет вложенный формат вебхука PayMongo,
// в топик события попадают тем же телом.
type gatewayEvent struct {
	Data struct {
		Attributes struct {
			Type string `json:"type"`
			Data struct {
				Attributes struct {
					PaymentIntentID string `json:"payment_intent_id"`
				} `json:"attributes"`
			} `json:"data"`
		} `json:"attributes"`
	} `json:"data"`
}
