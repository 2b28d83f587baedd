package order_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order.created"))

	return &Handler{
		orderService:             orderService,
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
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.processMessage(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// processMessage возвращает true, если обработку нужно прервать без коммита сообщения.
// Невалидные и повторные заказы коммитятся: повтор их не исправит.
func (h *Handler) processMessage(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		msgLog.With(logger.NewField("error", err)).Error("bad message")
		sess.MarkMessage(message, "")
		return false
	}

	orderCreate, err := event.toEntity()
	if err != nil {
		msgLog.With(logger.NewField("error", err)).Error("bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = msgLog.With(logger.NewField("order", orderCreate.ID))

	err = h.orderService.CreateOrder(ctx, orderCreate)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, order.ErrConflict):
			msgLog.Info("order already exists, skipping")

		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidWeight),
			errors.Is(err, order.ErrInvalidRegion),
			errors.Is(err, order.ErrInvalidDeliveryHours):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order rejected by validation")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to create order, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order created")
	sess.MarkMessage(message, "")
	return false
}
