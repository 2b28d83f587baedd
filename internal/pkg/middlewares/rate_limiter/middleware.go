package rate_limiter

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"dispatch/pkg/logger"
	"github.com/gorilla/mux"
)

const rejectBody = `{"error":"too many requests"}`

// Middleware отклоняет запросы сверх лимита с 429.
// limitQPS попадает только в заголовок X-RateLimit-Limit, сам лимит задает limiter.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(limitQPS)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := routeTemplate(r)
			retryAfter := retryAfterSeconds(limiter.RetryAfter())

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("retry_after", retryAfter),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectBody)); err != nil {
				log.With(logger.NewField("error", err)).Error("failed to write rate limit response")
			}
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}

// Retry-After в целых секундах, не меньше 1.
func retryAfterSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
