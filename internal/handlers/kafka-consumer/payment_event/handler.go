package payment_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	paymentservice "fleet/internal/service/payment"
	"fleet/pkg/logger"
)

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event gatewayEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	intentID := event.Data.Attributes.Data.Attributes.PaymentIntentID

	msgLog := h.log.With(
		logger.NewField("intent", intentID),
		logger.NewField("event_type", event.Data.Attributes.Type),
		logger.NewField("offset", message.Offset),
	)

	if intentID == "" {
		msgLog.Warn("payment.events handler received event without intent id")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.events processing")

	err = h.paymentService.ProcessGatewayCompletion(ctx, intentID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrPaymentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler unknown payment intent")

		case errors.Is(err, paymentservice.ErrInvalidIntentID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler invalid intent id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.events: processed")

	sess.MarkMessage(message, "")
	return false
}
