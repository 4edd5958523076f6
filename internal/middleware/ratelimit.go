package middleware

import (
	"net"
	"net/http"
	"strings"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/ratelimit"
	"pet-adoption/internal/platform/respond"
)

const msgTooManyRequests = "Muitas tentativas, tente novamente mais tarde!"

// RateLimit limita por IP (RemoteAddr, ya resuelto por chi RealIP).
// scope separa contadores entre grupos de rutas.
func RateLimit(limiter ratelimit.Limiter, scope string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientIP(r)
			if !limiter.Allow(r.Context(), key) {
				log.Warn("rate limited", map[string]any{"path": r.URL.Path, "key": key})
				w.Header().Set("Retry-After", "60")
				respond.Message(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
