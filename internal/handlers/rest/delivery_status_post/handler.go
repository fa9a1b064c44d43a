package delivery_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
	"fleet/internal/entities"
	"fleet/internal/service/delivery"
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
	var statusDTO dto.DeliveryStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var location *entities.GeoPoint
	if statusDTO.Location != nil {
		location = &entities.GeoPoint{
			Lat: statusDTO.Location.Lat,
			Lng: statusDTO.Location.Lng,
		}
	}

	advance, err := h.service.AdvanceStatus(
		r.Context(),
		statusDTO.DeliveryID,
		statusDTO.ActorID,
		entities.DeliveryStatusType(statusDTO.Status),
		location,
	)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryStatusResponse{
		Success:    true,
		DeliveryID: advance.DeliveryID,
		Status:     advance.Status.String(),
		Message:    advance.Message,
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
