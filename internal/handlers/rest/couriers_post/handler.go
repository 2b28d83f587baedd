package couriers_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/codec"
	"dispatch/pkg/logger"
)

const idKey = "courier_id"

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
	var request dto.CreateCouriersJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || len(request.Data) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ids := make([]int64, len(request.Data))
	rejected := make([]bool, len(request.Data))
	couriers := make([]entities.CourierCreate, 0, len(request.Data))

	for i, raw := range request.Data {
		courierCreate, err := toEntity(raw)
		if err != nil {
			ids[i] = codec.ItemID(raw, idKey)
			rejected[i] = true
			continue
		}
		ids[i] = courierCreate.ID
		couriers = append(couriers, courierCreate)
	}

	var result *entities.BatchResult
	if len(couriers) > 0 {
		result, err = h.service.CreateCouriers(r.Context(), couriers)
		if err != nil {
			h.log.With(logger.NewField("error", err)).Error("create couriers")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	created, failed := codec.BatchReport(ids, rejected, result)

	if len(failed) > 0 {
		h.writeJSON(w, http.StatusBadRequest, dto.CouriersValidationError{
			Couriers:        created,
			ValidationError: dto.CouriersCreateResponse{Couriers: failed},
		})
		return
	}

	h.writeJSON(w, http.StatusCreated, dto.CouriersCreateResponse{Couriers: created})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	err := codec.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toEntity(raw json.RawMessage) (entities.CourierCreate, error) {
	var item dto.CourierItem
	if err := codec.DecodeStrict(raw, &item); err != nil {
		return entities.CourierCreate{}, err
	}
	if item.CourierID == nil || item.CourierType == nil || item.Regions == nil || item.WorkingHours == nil {
		return entities.CourierCreate{}, errors.New("missing required fields")
	}

	return entities.CourierCreate{
		ID:           *item.CourierID,
		Category:     entities.CourierCategory(*item.CourierType),
		Regions:      *item.Regions,
		WorkingHours: *item.WorkingHours,
	}, nil
}
