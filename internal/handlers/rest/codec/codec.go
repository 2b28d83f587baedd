package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"github.com/gorilla/mux"
)

var ErrInvalidPathID = errors.New("invalid id in path")

// DecodeStrict декодирует элемент, запрещая неизвестные поля.
func DecodeStrict(raw json.RawMessage, v any) error {
	return DecodeBody(bytes.NewReader(raw), v)
}

// DecodeBody то же для тела запроса целиком.
func DecodeBody(r io.Reader, v any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// ItemID достает id элемента, который не удалось разобрать, чтобы сообщить о нем клиенту.
func ItemID(raw json.RawMessage, key string) int64 {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return 0
	}
	var id int64
	if err := json.Unmarshal(fields[key], &id); err != nil {
		return 0
	}
	return id
}

// BatchReport собирает созданные и отклоненные id в порядке запроса.
// ids - id всех элементов запроса, rejected - отброшенные при разборе,
// остальные элементы переданы в сервис в том же порядке.
func BatchReport(ids []int64, rejected []bool, result *entities.BatchResult) (created, failed []dto.IDItem) {
	created = make([]dto.IDItem, 0, len(ids))
	failed = make([]dto.IDItem, 0)

	j := 0
	for i, id := range ids {
		if rejected[i] {
			failed = append(failed, dto.IDItem{ID: id})
			continue
		}
		if result != nil && j < len(result.Failed) && result.Failed[j].ID == id {
			failed = append(failed, dto.IDItem{ID: id})
			j++
		}
	}

	if result != nil {
		for _, id := range result.Created {
			created = append(created, dto.IDItem{ID: id})
		}
	}
	return created, failed
}

// PathID id из шаблона роута вида /couriers/{id}.
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, ErrInvalidPathID
	}
	return id, nil
}

// WriteJSON статус уже отправлен, поэтому ошибку кодирования можно только залогировать.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
