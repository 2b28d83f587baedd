package orders_complete_post

import (
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/codec"
	"dispatch/internal/service/completion"
	"dispatch/pkg/logger"
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
	var completeDTO dto.CompleteOrderJSONRequestBody
	err := codec.DecodeBody(r.Body, &completeDTO)
	if err != nil ||
		completeDTO.CourierID == nil ||
		completeDTO.OrderID == nil ||
		completeDTO.CompleteTime == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCompletion := entities.OrderCompletion{
		CourierID:   *completeDTO.CourierID,
		OrderID:     *completeDTO.OrderID,
		CompletedAt: completeDTO.CompleteTime.UTC(),
	}

	orderID, err := h.service.Complete(r.Context(), orderCompletion)
	if err != nil {
		switch {
		case errors.Is(err, completion.ErrInvalidCourierID),
			errors.Is(err, completion.ErrInvalidOrderID),
			errors.Is(err, completion.ErrInvalidCompleteTime),
			errors.Is(err, completion.ErrOrderNotFound),
			errors.Is(err, completion.ErrCourierNotFound),
			errors.Is(err, completion.ErrNotAssigned):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, completion.ErrClockAnomaly):
			h.log.With(
				logger.NewField("order_id", orderCompletion.OrderID),
				logger.NewField("complete_time", orderCompletion.CompletedAt),
			).Warn("complete time is before lead time start")
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("order_id", orderCompletion.OrderID),
				logger.NewField("error", err),
			).Error("complete order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CompleteResponse{
		OrderID: orderID,
	}

	err = codec.WriteJSON(w, http.StatusOK, response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
