package courier_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/codec"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "courier_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := codec.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("courier_id", id),
				logger.NewField("error", err),
			).Error("get courier")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = codec.WriteJSON(w, http.StatusOK, toResponse(courierEntity))
	if err != nil {
		h.log.With(
			logger.NewField("courier_id", id),
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toResponse(c *entities.Courier) dto.CourierFull {
	response := dto.CourierFull{
		CourierID:    c.ID,
		CourierType:  dto.CourierType(c.Category),
		Regions:      c.Regions,
		WorkingHours: c.WorkingHours,
		Earning:      c.Earning,
	}
	// рейтинга нет, пока курьер не выполнил ни одного заказа
	if c.Rating != nil {
		rating := json.Number(c.Rating.StringFixed(2))
		response.Rating = &rating
	}
	return response
}
