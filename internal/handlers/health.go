package handlers

import "net/http"

// Health reports liveness, and database reachability when accounts are on.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.accounts != nil && h.accounts.DB != nil {
		if err := h.accounts.DB.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Metrics serves the Prometheus registry.
func (h *Handlers) Metrics(w http.ResponseWriter, r *http.Request) {
	h.metrics.Handler().ServeHTTP(w, r)
}
