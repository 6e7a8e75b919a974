package cache

import (
	"log/slog"
	"net/http"
)

// HealthHandler reports 200 OK when the store can be reached, and 503 otherwise.
func HealthHandler(store Store, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logger.Warn("failed to ping cache", "err", err)
			http.Error(w, "failed to ping cache", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
