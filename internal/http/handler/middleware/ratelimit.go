package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles an expensive route. A request waits for its reservation
// up to maxWait and is refused past that.
type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	limiter *rate.Limiter
	maxWait time.Duration
}

func NewRateLimitMiddleware(logger *zap.SugaredLogger, perSecond float64, burst int, maxWait time.Duration) *RateLimitMiddleware {
	if burst < 1 {
		burst = 1
	}

	return &RateLimitMiddleware{
		logs:    logger,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		maxWait: maxWait,
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reservation := m.limiter.Reserve()
		if !reservation.OK() || reservation.Delay() > m.maxWait {
			reservation.Cancel()
			writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, retry later")
			m.logs.Warnw("request rate limited", "path", r.URL.Path, "request_id", RequestID(r.Context()))
			return
		}

		select {
		case <-time.After(reservation.Delay()):
		case <-r.Context().Done():
			reservation.Cancel()
			return
		}

		next.ServeHTTP(w, r)
	})
}
