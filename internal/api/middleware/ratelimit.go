package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	apperrors "shopledger/internal/errors"
	repository "shopledger/internal/repositories"
	"shopledger/internal/utils/response"
)

// RateLimit caps mutating requests per client address inside a sliding
// window. Reads pass through untouched; a limiter failure lets the
// request through with a warning.
func RateLimit(limiter *repository.RedisRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			clientKey := r.RemoteAddr
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				clientKey = host
			}

			allowed, retryAfter, err := limiter.CheckWriteRateLimit(r.Context(), clientKey)
			if err != nil {
				LoggerFromContext(r.Context()).Warn("Rate limit check failed", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, apperrors.TooManyRequestsError("Too many requests. Try again later."))
				return
			}

			next.ServeHTTP(w, r)

		})
	}
}
