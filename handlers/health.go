package handlers

import (
	"net/http"

	"urmonov-web/pkg/response"
)

// Health - GET /healthz. Splash darvozasi ochilmaguncha 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.gate.IsOpen() {
		response.JSON(w, http.StatusServiceUnavailable, response.Response{
			Success: false,
			Message: "starting",
			Data:    map[string]any{"status": "starting", "gate_open": false},
		})
		return
	}
	response.Success(w, map[string]any{"status": "ok", "gate_open": true}, "")
}
