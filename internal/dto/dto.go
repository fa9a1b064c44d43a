// Package dto описывает тела HTTP-запросов и ответов сервиса.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DeliveryStatusRequest struct {
	DeliveryID int64     `json:"delivery_id"`
	ActorID    int64     `json:"actor_id"`
	Status     string    `json:"status"`
	Location   *GeoPoint `json:"location,omitempty"`
}

type DeliveryStatusResponse struct {
	Success    bool   `json:"success"`
	DeliveryID int64  `json:"delivery_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

type AssignDriverRequest struct {
	DeliveryID int64 `json:"delivery_id"`
}

type AssignDriverResponse struct {
	Success    bool   `json:"success"`
	DeliveryID int64  `json:"delivery_id,omitempty"`
	DriverID   int64  `json:"driver_id,omitempty"`
	DriverName string `json:"driver_name,omitempty"`
	Message    string `json:"message,omitempty"`
}

type PaymentCreateRequest struct {
	DeliveryID int64  `json:"delivery_id"`
	Method     string `json:"method"`
}

type PaymentCreateResponse struct {
	PaymentID    int64  `json:"payment_id"`
	IntentID     string `json:"intent_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
}

type PaymentCancelRequest struct {
	DeliveryID int64 `json:"delivery_id"`
}

type PaymentCancelResponse struct {
	Success    bool  `json:"success"`
	DeliveryID int64 `json:"delivery_id"`
}

type PaymentViewItem struct {
	DeliveryID int64     `json:"delivery_id"`
	Amount     float64   `json:"amount"`
	DueDate    time.Time `json:"due_date"`
	Status     string    `json:"status"`
}

type ClientPaymentSummaryResponse struct {
	ClientID      int64             `json:"client_id"`
	Payments      []PaymentViewItem `json:"payments"`
	OverdueCount  int64             `json:"overdue_count"`
	CanBookTrucks bool              `json:"can_book_trucks"`
}

// PaymentWebhookRequest вложенный формат событий PayMongo.
type PaymentWebhookRequest struct {
	Data PaymentWebhookData `json:"data"`
}

type PaymentWebhookData struct {
	Attributes PaymentWebhookAttributes `json:"attributes"`
}

type PaymentWebhookAttributes struct {
	Type string                  `json:"type"`
	Data PaymentWebhookEventData `json:"data"`
}

type PaymentWebhookEventData struct {
	Attributes PaymentWebhookEventAttributes `json:"attributes"`
}

type PaymentWebhookEventAttributes struct {
	PaymentIntentID string `json:"payment_intent_id"`
}
