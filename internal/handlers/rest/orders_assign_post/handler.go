package orders_assign_post

import (
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/codec"
	"dispatch/internal/service/assignment"
	"dispatch/pkg/logger"
	"github.com/AlekSi/pointer"
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
	var assignDTO dto.AssignOrdersJSONRequestBody
	err := codec.DecodeBody(r.Body, &assignDTO)
	if err != nil || assignDTO.CourierID == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierID := *assignDTO.CourierID

	result, err := h.service.Assign(r.Context(), courierID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidCourierID),
			errors.Is(err, assignment.ErrCourierNotFound):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("courier_id", courierID),
				logger.NewField("error", err),
			).Error("assign orders")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignResponse{
		Orders: make([]dto.IDItem, 0, len(result.OrderIDs)),
	}
	for _, id := range result.OrderIDs {
		response.Orders = append(response.Orders, dto.IDItem{ID: id})
	}
	if len(response.Orders) > 0 {
		// полная точность, время из ответа можно без потерь передать в /orders/complete
		response.AssignTime = pointer.To(result.AssignedAt.UTC())
	}

	err = codec.WriteJSON(w, http.StatusOK, response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
