package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/taxdraft/src/logger"
	"github.com/username/taxdraft/src/models"
	"github.com/username/taxdraft/src/services"
	"github.com/username/taxdraft/src/utils"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// ComputeHandler serves the computation endpoints. Every request carries the
// full input payload and every response is derived from it alone, so the
// handler holds no state beyond the service it delegates to.
type ComputeHandler struct {
	computationService services.ComputationService
}

func NewComputeHandler(service services.ComputationService) *ComputeHandler {
	return &ComputeHandler{computationService: service}
}

// HandleCompute returns the flat summary of the final computed year.
func (h *ComputeHandler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComputeRequest(w, r)
	if !ok {
		return
	}

	summary, err := h.computationService.ComputeSummary(req)
	if err != nil {
		writeComputationError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.L.Error("Error encoding summary response", "error", err,
			"requestID", RequestIDFromContext(r.Context()))
	}
}

// HandleReport returns the full draft report with every statement laid out
// as ordered label and amount lines.
func (h *ComputeHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComputeRequest(w, r)
	if !ok {
		return
	}

	draft, err := h.computationService.ComputeDraft(req)
	if err != nil {
		writeComputationError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(draft); err != nil {
		logger.L.Error("Error encoding draft report response", "error", err,
			"requestID", RequestIDFromContext(r.Context()))
	}
}

// decodeComputeRequest parses the request body shared by the compute, report
// and excel endpoints. It writes the error response itself and reports
// success through the second return value.
func decodeComputeRequest(w http.ResponseWriter, r *http.Request) (*models.ComputeRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req models.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.L.Warn("Failed to decode compute request", "error", err,
			"requestID", RequestIDFromContext(r.Context()))
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

// writeComputationError maps service errors onto HTTP responses. Validation
// failures carry their message to the client; anything else is logged and
// answered with a generic 500 so internals never leak.
func writeComputationError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := RequestIDFromContext(r.Context())

	if errors.Is(err, services.ErrInvalidInput) {
		logger.L.Warn("Computation request rejected", "error", err, "requestID", requestID)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.L.Error("Internal error during computation", "error", err, "requestID", requestID)
	utils.SendJSONError(w, "An internal error occurred while computing the draft. Please try again later.", http.StatusInternalServerError)
}
