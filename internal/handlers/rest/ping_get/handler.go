package ping_get

import (
	"net/http"
	"time"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/codec"
	"dispatch/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	startedAt time.Time
	now       func() time.Time
}

func New(log handlerLogger, startedAt time.Time) *Handler {
	return &Handler{
		log:       log.With(logger.NewField("handler", "ping_get")),
		startedAt: startedAt,
		now:       time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message:       "pong",
		UptimeSeconds: int64(h.now().Sub(h.startedAt) / time.Second),
	}

	if err := codec.WriteJSON(w, http.StatusOK, res); err != nil {
		h.log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
