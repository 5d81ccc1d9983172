package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/taxdraft/src/logger"
)

// HandleRoot reports service liveness. The mux routes every unmatched path
// here, so anything other than the bare root is a 404.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		logger.L.Warn("Unknown path requested", "method", r.Method, "path", r.URL.Path)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"message": "Tax Draft Backend is running",
	}); err != nil {
		logger.L.Error("Error encoding status response", "error", err)
	}
}

// HandlePing answers health probes.
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "pong"}); err != nil {
		logger.L.Error("Error encoding ping response", "error", err)
	}
}
