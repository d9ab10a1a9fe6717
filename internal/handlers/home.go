package handlers

import (
	"bytes"
	"net/http"
)

// Home serves the bootstrapped page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	// Buffer so a failed mount still yields a clean 500.
	var buf bytes.Buffer
	if err := h.site.Page(r.Context(), &buf); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !h.config.IsDevelopment() {
		w.Header().Set("Cache-Control", "public, max-age=60")
	}
	w.Write(buf.Bytes())
}
