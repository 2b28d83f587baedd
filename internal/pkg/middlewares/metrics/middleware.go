package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dispatch/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	RequestIDHeader = "X-Request-ID"

	// метка для запросов мимо роутов, сырой путь в метки не пишем
	unmatchedRoute = "unmatched"
)

// Middleware пишет метрики и access log. Ответы 5xx логируются как Error.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := ensureRequestID(r.Header.Get(RequestIDHeader))
			w.Header().Set(RequestIDHeader, requestID)

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			route := routeLabel(r)
			status := strconv.Itoa(rec.status)

			HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, status).Inc()
			HTTPResponseSize.WithLabelValues(r.Method, route).Observe(float64(rec.written))

			requestLog := log.With(
				logger.NewField("request_id", requestID),
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", rec.status),
				logger.NewField("bytes", rec.written),
				logger.NewField("duration_ms", float64(elapsed.Microseconds())/1000),
			)
			if rec.status >= http.StatusInternalServerError {
				requestLog.Error("HTTP request failed")
				return
			}
			requestLog.Info("HTTP request")
		})
	}
}

// ensureRequestID id от балансировщика сохраняем, иначе генерируем свой.
func ensureRequestID(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil {
		return incoming
	}
	return uuid.NewString()
}

func routeLabel(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return template
}

type recorder struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

func (rec *recorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}
