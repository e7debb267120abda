package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/al1ina/HackTheBias/internal/classify"
	"github.com/al1ina/HackTheBias/internal/landmark"
	"github.com/al1ina/HackTheBias/internal/store"
)

// AttemptHandler records evaluated practice frames and lists attempt history.
type AttemptHandler struct {
	store *store.Store
}

// NewAttemptHandler creates a new AttemptHandler with the given store.
func NewAttemptHandler(s *store.Store) *AttemptHandler {
	return &AttemptHandler{store: s}
}

type recordAttemptRequest struct {
	UserID    string         `json:"user_id"`
	Landmarks landmark.Frame `json:"landmarks"`
	Target    string         `json:"target"`
}

type attemptResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Target     string  `json:"target"`
	Match      bool    `json:"match"`
	CreatedAt  string  `json:"created_at"`
}

type listAttemptsResponse struct {
	Attempts []attemptResponse `json:"attempts"`
}

// ServeHTTP routes /api/attempts.
func (h *AttemptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.record(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// record handles POST /api/attempts: evaluate the frame, persist the
// outcome, and return it.
func (h *AttemptHandler) record(w http.ResponseWriter, r *http.Request) {
	var req recordAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	eval := EvaluateRequest{Landmarks: req.Landmarks, Target: req.Target}
	if msg := eval.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := h.store.Users().GetByID(req.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	result := classify.Evaluate(req.Landmarks, req.Target)

	attempt := &store.Attempt{
		ID:         uuid.New().String(),
		UserID:     req.UserID,
		Target:     string(result.Target),
		Detected:   string(result.Letter),
		Confidence: result.Confidence,
		Correct:    result.Match,
	}

	if err := h.store.Attempts().Create(attempt); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record attempt")
		return
	}

	writeJSON(w, http.StatusCreated, toAttemptResponse(attempt))
}

// list handles GET /api/attempts?user_id=...&limit=...
func (h *AttemptHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	attempts, err := h.store.Attempts().ListByUser(userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list attempts")
		return
	}

	response := listAttemptsResponse{
		Attempts: make([]attemptResponse, 0, len(attempts)),
	}
	for _, a := range attempts {
		response.Attempts = append(response.Attempts, toAttemptResponse(a))
	}

	writeJSON(w, http.StatusOK, response)
}

func toAttemptResponse(a *store.Attempt) attemptResponse {
	return attemptResponse{
		ID:         a.ID,
		Label:      a.Detected,
		Confidence: a.Confidence,
		Target:     a.Target,
		Match:      a.Correct,
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// LeaderboardHandler ranks users by correct attempts.
type LeaderboardHandler struct {
	store *store.Store
}

// NewLeaderboardHandler creates a new LeaderboardHandler with the given store.
func NewLeaderboardHandler(s *store.Store) *LeaderboardHandler {
	return &LeaderboardHandler{store: s}
}

type leaderboardEntry struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	CorrectCount int    `json:"correct_count"`
}

type leaderboardResponse struct {
	Entries []leaderboardEntry `json:"entries"`
}

// ServeHTTP handles GET /api/leaderboard?limit=...
func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.store.Attempts().Leaderboard(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	response := leaderboardResponse{
		Entries: make([]leaderboardEntry, 0, len(entries)),
	}
	for _, e := range entries {
		response.Entries = append(response.Entries, leaderboardEntry{
			UserID:       e.UserID,
			Username:     e.Username,
			CorrectCount: e.CorrectCount,
		})
	}

	writeJSON(w, http.StatusOK, response)
}
