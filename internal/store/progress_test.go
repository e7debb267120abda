package store

import "testing"

func TestProgressRepository_DefaultsWhenMissing(t *testing.T) {
	s := newTestStore(t)
	u := createTestUser(t, s, "johndoe", "john@example.com")

	p, err := s.Progress().Get(u.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if p.LevelType != LevelBeginner {
		t.Errorf("level type = %q, want %q", p.LevelType, LevelBeginner)
	}
	if p.LevelNumber != 1 {
		t.Errorf("level number = %d, want 1", p.LevelNumber)
	}
	if p.Streak != 0 {
		t.Errorf("streak = %d, want 0", p.Streak)
	}
}

func TestProgressRepository_Upsert(t *testing.T) {
	s := newTestStore(t)
	u := createTestUser(t, s, "johndoe", "john@example.com")

	// First write creates the row
	if err := s.Progress().Upsert(&Progress{
		UserID:      u.ID,
		LevelType:   LevelPro,
		LevelNumber: 3,
		Streak:      5,
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	p, err := s.Progress().Get(u.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.LevelType != LevelPro || p.LevelNumber != 3 || p.Streak != 5 {
		t.Errorf("progress = %+v, want pro/3/5", p)
	}

	// Second write updates in place
	if err := s.Progress().Upsert(&Progress{
		UserID:      u.ID,
		LevelType:   LevelExpert,
		LevelNumber: 1,
		Streak:      6,
	}); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	p, err = s.Progress().Get(u.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.LevelType != LevelExpert || p.LevelNumber != 1 || p.Streak != 6 {
		t.Errorf("progress = %+v, want expert/1/6", p)
	}
}

func TestProgressRepository_RejectsUnknownLevelType(t *testing.T) {
	s := newTestStore(t)
	u := createTestUser(t, s, "johndoe", "john@example.com")

	err := s.Progress().Upsert(&Progress{
		UserID:      u.ID,
		LevelType:   LevelType("wizard"),
		LevelNumber: 1,
	})
	if err == nil {
		t.Error("Upsert() with unknown level type should fail the CHECK constraint")
	}
}

func TestLevelType_Valid(t *testing.T) {
	for _, l := range []LevelType{LevelBeginner, LevelPro, LevelExpert} {
		if !l.Valid() {
			t.Errorf("Valid() = false for %q, want true", l)
		}
	}
	for _, l := range []LevelType{"", "wizard", "Beginner"} {
		if l.Valid() {
			t.Errorf("Valid() = true for %q, want false", l)
		}
	}
}
