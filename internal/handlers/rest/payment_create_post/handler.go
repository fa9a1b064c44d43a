package payment_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/entities"
	"fleet/internal/service/delivery"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.PaymentCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	checkout, err := h.service.CreatePayment(r.Context(), createDTO.DeliveryID, entities.PaymentMethodType(createDTO.Method))
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidDeliveryID),
			errors.Is(err, payment.ErrInvalidMethod),
			errors.Is(err, payment.ErrDeliveryCancelled):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrPaymentAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentCreateResponse{
		PaymentID:    checkout.PaymentID,
		IntentID:     checkout.IntentID,
		ClientSecret: checkout.ClientSecret,
		RedirectURL:  checkout.RedirectURL,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
