package handler

import "net/http"

// Health godoc
// @Summary Liveness probe
// @Tags infra
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
