// Package server provides the HTTP server for the SilentSpeak backend.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/al1ina/HackTheBias/internal/server/api"
	"github.com/al1ina/HackTheBias/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
}

// Server represents the HTTP server for the SilentSpeak application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Stateless classification endpoints
	s.mux.Handle("/api/evaluate", api.NewEvaluateHandler())
	s.mux.Handle("/api/letters", api.NewLettersHandler())
	s.mux.Handle("/api/live", NewLiveHandler())

	// Account and progress endpoints need the store
	if s.config.Store != nil {
		userHandler := api.NewUserHandler(s.config.Store)
		s.mux.Handle("/api/users", userHandler)
		s.mux.Handle("/api/users/", userHandler)
		s.mux.Handle("/api/login", api.NewLoginHandler(s.config.Store))

		progressHandler := api.NewProgressHandler(s.config.Store)
		s.mux.Handle("/api/progress/", progressHandler)

		attemptHandler := api.NewAttemptHandler(s.config.Store)
		s.mux.Handle("/api/attempts", attemptHandler)
		s.mux.Handle("/api/leaderboard", api.NewLeaderboardHandler(s.config.Store))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
