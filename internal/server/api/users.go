package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/al1ina/HackTheBias/internal/auth"
	"github.com/al1ina/HackTheBias/internal/store"
)

// UserHandler handles signup and email verification.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new UserHandler with the given store.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID string `json:"id"`
	// VerificationCode is returned directly until an email sender is wired
	// up; the frontend shows it on the confirmation screen.
	VerificationCode string `json:"verification_code"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type verifyResponse struct {
	Verified bool `json:"verified"`
}

// ServeHTTP routes /api/users and /api/users/verify.
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/users")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "" && r.Method == http.MethodPost:
		h.signup(w, r)
	case path == "verify" && r.Method == http.MethodPost:
		h.verify(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// signup handles POST /api/users and creates an unverified account.
func (h *UserHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	code, err := auth.NewVerificationCode()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := &store.User{
		ID:               uuid.New().String(),
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     hash,
		VerificationCode: code,
	}

	if err := h.store.Users().Create(user); err != nil {
		writeError(w, http.StatusConflict, "Username or email already taken")
		return
	}

	log.Printf("verification code for %s: %s", user.Email, code)

	writeJSON(w, http.StatusCreated, signupResponse{ID: user.ID, VerificationCode: code})
}

// verify handles POST /api/users/verify and flips the verified flag when the
// code matches.
func (h *UserHandler) verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "Email and code are required")
		return
	}

	if err := h.store.Users().Verify(req.Email, req.Code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusBadRequest, verifyResponse{Verified: false})
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Verified: true})
}
