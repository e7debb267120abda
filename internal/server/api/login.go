package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/al1ina/HackTheBias/internal/auth"
	"github.com/al1ina/HackTheBias/internal/store"
)

// LoginHandler authenticates a user and returns their current progress.
type LoginHandler struct {
	store *store.Store
}

// NewLoginHandler creates a new LoginHandler with the given store.
func NewLoginHandler(s *store.Store) *LoginHandler {
	return &LoginHandler{store: s}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	LevelType   string `json:"level_type"`
	LevelNumber int    `json:"level_number"`
	Streak      int    `json:"streak"`
}

// ServeHTTP handles POST /api/login.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.Users().GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same response as a bad password: don't leak which usernames exist.
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.EmailVerified {
		writeError(w, http.StatusForbidden, "Email not verified")
		return
	}

	progress, err := h.store.Progress().Get(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		LevelType:   string(progress.LevelType),
		LevelNumber: progress.LevelNumber,
		Streak:      progress.Streak,
	})
}
