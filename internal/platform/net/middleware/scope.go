package middleware

import (
	"net/http"

	"sarifview/internal/platform/logger"
	pnet "sarifview/internal/platform/net"
)

// Scope copies the request id and the serving session id onto the logger context
// so logger.C(r.Context()) tags every line of the request
func Scope(sessionID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
