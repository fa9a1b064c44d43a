package payment_webhook_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/service/payment"
	"fleet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP принимает событие шлюза. Неизвестный интент подтверждаем
// со статусом 200, иначе шлюз будет бесконечно ретраить доставку события.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var webhookDTO dto.PaymentWebhookRequest
	err := json.NewDecoder(r.Body).Decode(&webhookDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	intentID := webhookDTO.Data.Attributes.Data.Attributes.PaymentIntentID
	if intentID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ProcessGatewayCompletion(r.Context(), intentID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidIntentID):
			w.WriteHeader(http.StatusBadRequest)
			return
		case errors.Is(err, payment.ErrPaymentNotFound):
			h.log.With(
				logger.NewField("intent", intentID),
			).Warn("webhook for unknown payment intent")
			w.WriteHeader(http.StatusOK)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}
