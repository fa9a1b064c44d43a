package ping_get

import (
	"encoding/json"
	"net/http"

	"fleet/internal/dto"
	"fleet/pkg/logger"
)

const pongMessage = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := pongMessage
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(dto.PingResponse{Message: &message}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
