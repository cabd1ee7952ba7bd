package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. Method matching is
// enforced by the router.
func Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}
