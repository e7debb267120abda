package store

import (
	"testing"

	"github.com/google/uuid"
)

func recordAttempt(t *testing.T, s *Store, userID, target, detected string, correct bool) {
	t.Helper()

	err := s.Attempts().Create(&Attempt{
		ID:         uuid.New().String(),
		UserID:     userID,
		Target:     target,
		Detected:   detected,
		Confidence: 0.85,
		Correct:    correct,
	})
	if err != nil {
		t.Fatalf("failed to record attempt: %v", err)
	}
}

func TestAttemptRepository_CreateAndList(t *testing.T) {
	s := newTestStore(t)
	u := createTestUser(t, s, "johndoe", "john@example.com")

	recordAttempt(t, s, u.ID, "B", "B", true)
	recordAttempt(t, s, u.ID, "V", "H", false)
	recordAttempt(t, s, u.ID, "A", "A", true)

	attempts, err := s.Attempts().ListByUser(u.ID, 10)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("ListByUser() returned %d attempts, want 3", len(attempts))
	}

	for _, a := range attempts {
		if a.UserID != u.ID {
			t.Errorf("attempt %s has user %q, want %q", a.ID, a.UserID, u.ID)
		}
	}
}

func TestAttemptRepository_ListLimit(t *testing.T) {
	s := newTestStore(t)
	u := createTestUser(t, s, "johndoe", "john@example.com")

	for i := 0; i < 5; i++ {
		recordAttempt(t, s, u.ID, "B", "B", true)
	}

	attempts, err := s.Attempts().ListByUser(u.ID, 2)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(attempts) != 2 {
		t.Errorf("ListByUser() returned %d attempts, want 2", len(attempts))
	}
}

func TestAttemptRepository_Leaderboard(t *testing.T) {
	s := newTestStore(t)
	alice := createTestUser(t, s, "alice", "alice@example.com")
	bob := createTestUser(t, s, "bob", "bob@example.com")
	carol := createTestUser(t, s, "carol", "carol@example.com")

	// alice: 3 correct, bob: 1 correct plus misses, carol: only misses
	recordAttempt(t, s, alice.ID, "A", "A", true)
	recordAttempt(t, s, alice.ID, "B", "B", true)
	recordAttempt(t, s, alice.ID, "Y", "Y", true)
	recordAttempt(t, s, bob.ID, "L", "L", true)
	recordAttempt(t, s, bob.ID, "V", "H", false)
	recordAttempt(t, s, carol.ID, "W", "B", false)

	entries, err := s.Attempts().Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Leaderboard() returned %d entries, want 2 (no-correct users excluded)", len(entries))
	}
	if entries[0].Username != "alice" || entries[0].CorrectCount != 3 {
		t.Errorf("first entry = %s/%d, want alice/3", entries[0].Username, entries[0].CorrectCount)
	}
	if entries[1].Username != "bob" || entries[1].CorrectCount != 1 {
		t.Errorf("second entry = %s/%d, want bob/1", entries[1].Username, entries[1].CorrectCount)
	}
}

func TestAttemptRepository_LeaderboardLimit(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"u1", "u2", "u3"} {
		u := createTestUser(t, s, name, name+"@example.com")
		recordAttempt(t, s, u.ID, "A", "A", true)
	}

	entries, err := s.Attempts().Leaderboard(2)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Leaderboard() returned %d entries, want 2", len(entries))
	}
}
