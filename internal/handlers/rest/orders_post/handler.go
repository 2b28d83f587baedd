package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/codec"
	"dispatch/pkg/logger"
	"github.com/shopspring/decimal"
)

const idKey = "order_id"

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
	var request dto.CreateOrdersJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil || len(request.Data) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ids := make([]int64, len(request.Data))
	rejected := make([]bool, len(request.Data))
	orders := make([]entities.OrderCreate, 0, len(request.Data))

	for i, raw := range request.Data {
		orderCreate, err := toEntity(raw)
		if err != nil {
			ids[i] = codec.ItemID(raw, idKey)
			rejected[i] = true
			continue
		}
		ids[i] = orderCreate.ID
		orders = append(orders, orderCreate)
	}

	var result *entities.BatchResult
	if len(orders) > 0 {
		result, err = h.service.CreateOrders(r.Context(), orders)
		if err != nil {
			h.log.With(logger.NewField("error", err)).Error("create orders")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	created, failed := codec.BatchReport(ids, rejected, result)

	if len(failed) > 0 {
		h.writeJSON(w, http.StatusBadRequest, dto.OrdersValidationError{
			Orders:          created,
			ValidationError: dto.OrdersCreateResponse{Orders: failed},
		})
		return
	}

	h.writeJSON(w, http.StatusCreated, dto.OrdersCreateResponse{Orders: created})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	err := codec.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toEntity(raw json.RawMessage) (entities.OrderCreate, error) {
	var item dto.OrderItem
	if err := codec.DecodeStrict(raw, &item); err != nil {
		return entities.OrderCreate{}, err
	}
	if item.OrderID == nil || item.Weight == nil || item.Region == nil || item.DeliveryHours == nil {
		return entities.OrderCreate{}, errors.New("missing required fields")
	}

	// вес читается как строка, чтобы не терять точность на float64
	weight, err := decimal.NewFromString(item.Weight.String())
	if err != nil {
		return entities.OrderCreate{}, err
	}

	return entities.OrderCreate{
		ID:            *item.OrderID,
		Weight:        weight,
		Region:        *item.Region,
		DeliveryHours: *item.DeliveryHours,
	}, nil
}
