package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/al1ina/HackTheBias/internal/store"
)

// ProgressHandler handles reads and updates of a user's curriculum position.
type ProgressHandler struct {
	store *store.Store
}

// NewProgressHandler creates a new ProgressHandler with the given store.
func NewProgressHandler(s *store.Store) *ProgressHandler {
	return &ProgressHandler{store: s}
}

type progressResponse struct {
	UserID      string `json:"user_id"`
	LevelType   string `json:"level_type"`
	LevelNumber int    `json:"level_number"`
	Streak      int    `json:"streak"`
}

type updateProgressRequest struct {
	LevelType   string `json:"level_type"`
	LevelNumber int    `json:"level_number"`
	Streak      int    `json:"streak"`
}

// ServeHTTP routes /api/progress/{userID}.
func (h *ProgressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimPrefix(r.URL.Path, "/api/progress")
	userID = strings.TrimPrefix(userID, "/")

	if userID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	// The user must exist regardless of method
	if _, err := h.store.Users().GetByID(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, userID)
	case http.MethodPut:
		h.update(w, r, userID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// get handles GET /api/progress/{userID}.
func (h *ProgressHandler) get(w http.ResponseWriter, r *http.Request, userID string) {
	progress, err := h.store.Progress().Get(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

// update handles PUT /api/progress/{userID}.
func (h *ProgressHandler) update(w http.ResponseWriter, r *http.Request, userID string) {
	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	levelType := store.LevelType(req.LevelType)
	if levelType == "" {
		levelType = store.LevelBeginner
	}
	if !levelType.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid level type")
		return
	}

	levelNumber := req.LevelNumber
	if levelNumber <= 0 {
		levelNumber = 1
	}

	progress := &store.Progress{
		UserID:      userID,
		LevelType:   levelType,
		LevelNumber: levelNumber,
		Streak:      req.Streak,
	}

	if err := h.store.Progress().Upsert(progress); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update progress")
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

func toProgressResponse(p *store.Progress) progressResponse {
	return progressResponse{
		UserID:      p.UserID,
		LevelType:   string(p.LevelType),
		LevelNumber: p.LevelNumber,
		Streak:      p.Streak,
	}
}
