package client_payments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP отдает платежную сводку клиента. Сверка статусов выполняется
// на чтении: просроченные платежи помечаются до выдачи ответа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	clientID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reconciliation, err := h.service.ReconcileClientPaymentStatus(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidClientID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrClientNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	views, err := h.service.GetClientPaymentSummary(r.Context(), clientID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := make([]dto.PaymentViewItem, 0, len(views))
	for _, view := range views {
		items = append(items, dto.PaymentViewItem{
			DeliveryID: view.DeliveryID,
			Amount:     view.Amount,
			DueDate:    view.DueDate,
			Status:     view.Status.String(),
		})
	}

	response := dto.ClientPaymentSummaryResponse{
		ClientID:      reconciliation.ClientID,
		Payments:      items,
		OverdueCount:  reconciliation.OverdueCount,
		CanBookTrucks: reconciliation.CanBookTrucks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
