package delivery_assign_driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/dto"
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
	var assignDTO dto.AssignDriverRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignRandomDriver(r.Context(), assignDTO.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNoActiveDrivers):
			h.writeJSON(w, http.StatusConflict, dto.AssignDriverResponse{
				Success: false,
				Message: "No active drivers available for assignment",
			})
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.AssignDriverResponse{
		Success:    true,
		DeliveryID: assignment.DeliveryID,
		DriverID:   assignment.DriverID,
		DriverName: assignment.DriverName,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response dto.AssignDriverResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
