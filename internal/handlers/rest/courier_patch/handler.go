package courier_patch

import (
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
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := codec.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// неизвестный ключ делает весь запрос невалидным
	var update dto.PatchCourierJSONRequestBody
	err = codec.DecodeBody(r.Body, &update)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModify := toEntity(id, update)

	res, err := h.service.UpdateCourier(r.Context(), courierModify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCategory),
			errors.Is(err, courier.ErrInvalidRegion),
			errors.Is(err, courier.ErrInvalidWorkingHours),
			errors.Is(err, courier.ErrImmutableField):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("courier_id", id),
				logger.NewField("error", err),
			).Error("update courier")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Courier{
		CourierID:    res.ID,
		CourierType:  dto.CourierType(res.Category),
		Regions:      res.Regions,
		WorkingHours: res.WorkingHours,
	}

	err = codec.WriteJSON(w, http.StatusOK, response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toEntity(id int64, update dto.CourierUpdate) entities.CourierModify {
	courierModify := entities.CourierModify{
		ID:           id,
		NewID:        update.CourierID,
		Regions:      update.Regions,
		WorkingHours: update.WorkingHours,
	}
	if update.CourierType != nil {
		category := entities.CourierCategory(*update.CourierType)
		courierModify.Category = &category
	}
	return courierModify
}
