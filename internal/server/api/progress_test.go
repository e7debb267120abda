package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProgressHandler_Get_Defaults(t *testing.T) {
	s := newTestStore(t)
	id := verifiedTestUser(t, s, "alice", "alice@example.com")
	handler := NewProgressHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/progress/"+id, nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var response progressResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.UserID != id {
		t.Errorf("expected user ID %q, got %q", id, response.UserID)
	}

	if response.LevelType != "beginner" {
		t.Errorf("expected level type 'beginner', got %q", response.LevelType)
	}

	if response.LevelNumber != 1 {
		t.Errorf("expected level number 1, got %d", response.LevelNumber)
	}

	if response.Streak != 0 {
		t.Errorf("expected streak 0, got %d", response.Streak)
	}
}

func TestProgressHandler_Update(t *testing.T) {
	s := newTestStore(t)
	id := verifiedTestUser(t, s, "alice", "alice@example.com")
	handler := NewProgressHandler(s)

	reqBody := updateProgressRequest{
		LevelType:   "pro",
		LevelNumber: 3,
		Streak:      7,
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPut, "/api/progress/"+id, bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var response progressResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.LevelType != "pro" {
		t.Errorf("expected level type 'pro', got %q", response.LevelType)
	}

	if response.LevelNumber != 3 {
		t.Errorf("expected level number 3, got %d", response.LevelNumber)
	}

	if response.Streak != 7 {
		t.Errorf("expected streak 7, got %d", response.Streak)
	}

	// Verify the update was persisted
	stored, err := s.Progress().Get(id)
	if err != nil {
		t.Fatalf("failed to load progress: %v", err)
	}

	if stored.LevelNumber != 3 || stored.Streak != 7 {
		t.Errorf("stored progress mismatch: got level %d streak %d", stored.LevelNumber, stored.Streak)
	}
}

func TestProgressHandler_Update_Defaults(t *testing.T) {
	s := newTestStore(t)
	id := verifiedTestUser(t, s, "alice", "alice@example.com")
	handler := NewProgressHandler(s)

	// Empty level type and zero level number fall back to beginner/1
	body, _ := json.Marshal(updateProgressRequest{Streak: 2})

	req := httptest.NewRequest(http.MethodPut, "/api/progress/"+id, bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var response progressResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.LevelType != "beginner" {
		t.Errorf("expected level type 'beginner', got %q", response.LevelType)
	}

	if response.LevelNumber != 1 {
		t.Errorf("expected level number 1, got %d", response.LevelNumber)
	}
}

func TestProgressHandler_Update_InvalidLevelType(t *testing.T) {
	s := newTestStore(t)
	id := verifiedTestUser(t, s, "alice", "alice@example.com")
	handler := NewProgressHandler(s)

	body, _ := json.Marshal(updateProgressRequest{LevelType: "wizard", LevelNumber: 1})

	req := httptest.NewRequest(http.MethodPut, "/api/progress/"+id, bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestProgressHandler_UnknownUser(t *testing.T) {
	s := newTestStore(t)
	handler := NewProgressHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/progress/non-existent", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestProgressHandler_MissingUserID(t *testing.T) {
	s := newTestStore(t)
	handler := NewProgressHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/progress/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestProgressHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	id := verifiedTestUser(t, s, "alice", "alice@example.com")
	handler := NewProgressHandler(s)

	req := httptest.NewRequest(http.MethodDelete, "/api/progress/"+id, nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
