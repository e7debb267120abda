package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/al1ina/HackTheBias/internal/classify"
	"github.com/al1ina/HackTheBias/internal/landmark"
)

// EvaluateHandler classifies a single landmark frame against a target letter.
type EvaluateHandler struct{}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler() *EvaluateHandler {
	return &EvaluateHandler{}
}

// EvaluateRequest is the boundary contract for a single-frame evaluation:
// the tracked landmarks for one hand plus the letter being practiced.
type EvaluateRequest struct {
	Landmarks landmark.Frame `json:"landmarks"`
	Target    string         `json:"target"`
}

// Validate checks the request against the classifier's preconditions and
// returns a caller-facing message for the first violation found. Each
// rejection is distinct: missing input is never coerced into a
// low-confidence classification.
func (req *EvaluateRequest) Validate() string {
	if len(req.Landmarks) == 0 {
		return "Landmarks are required"
	}
	if req.Target == "" {
		return "Target letter is required"
	}
	if !classify.Supported(req.Target) {
		return fmt.Sprintf("Unsupported target letter %q", req.Target)
	}
	if !req.Landmarks.Complete() {
		return fmt.Sprintf("Expected %d landmarks, got %d", landmark.NumLandmarks, len(req.Landmarks))
	}
	return ""
}

// ServeHTTP handles POST /api/evaluate.
func (h *EvaluateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := req.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	writeJSON(w, http.StatusOK, classify.Evaluate(req.Landmarks, req.Target))
}

// LettersHandler reports the closed set of letters the classifier supports.
type LettersHandler struct{}

// NewLettersHandler creates a new LettersHandler.
func NewLettersHandler() *LettersHandler {
	return &LettersHandler{}
}

type lettersResponse struct {
	Letters []classify.Letter `json:"letters"`
}

// ServeHTTP handles GET /api/letters.
func (h *LettersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, lettersResponse{Letters: classify.Letters()})
}
