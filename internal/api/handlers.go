package api

import (
	"encoding/json"
	"net/http"

	"github.com/tadbeer/refund-calculator/internal/calculation"
	"github.com/tadbeer/refund-calculator/internal/config"
	"github.com/tadbeer/refund-calculator/internal/domain"
)

// Handler holds all dependencies for HTTP handlers. The engine is pure and
// concurrency-safe, so one handler serves every request.
type Handler struct {
	Engine *calculation.RefundEngine
	Parser *config.InputParser
}

// NewHandler creates a new handler around a refund engine.
func NewHandler(engine *calculation.RefundEngine) *Handler {
	return &Handler{
		Engine: engine,
		Parser: config.NewInputParser(),
	}
}

// CalculateRefund computes a refund determination for the posted case.
// The endpoint stores nothing; it exists so the wizard can recalculate on
// every change.
func (h *Handler) CalculateRefund(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	refundCase, err := req.ToCase()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid case", err)
		return
	}
	if err := h.Parser.ValidateCase(&refundCase); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid case", err)
		return
	}

	result := h.Engine.ComputeRefund(refundCase)
	if req.ManualDeduction != nil {
		result = calculation.ApplyManualDeduction(result, *req.ManualDeduction)
	}

	writeJSON(w, http.StatusOK, domain.RefundStatement{
		Case:   refundCase,
		Result: result,
	})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
