package store

import (
	"database/sql"
	"errors"
	"time"
)

// LevelType represents the difficulty tier a user is practicing.
type LevelType string

const (
	// LevelBeginner uses guided prompts with on-screen hints.
	LevelBeginner LevelType = "beginner"
	// LevelPro evaluates camera frames against the target letter.
	LevelPro LevelType = "pro"
	// LevelExpert is LevelPro with a stricter confidence bar in the client.
	LevelExpert LevelType = "expert"
)

// Valid reports whether the level type is one of the known tiers.
func (l LevelType) Valid() bool {
	return l == LevelBeginner || l == LevelPro || l == LevelExpert
}

// Progress represents a user's position in the curriculum.
type Progress struct {
	UserID      string
	LevelType   LevelType
	LevelNumber int
	Streak      int
	UpdatedAt   time.Time
}

// ProgressRepository provides read and upsert operations for progress rows.
type ProgressRepository struct {
	db *sql.DB
}

// Progress returns the progress repository for this store.
func (s *Store) Progress() *ProgressRepository {
	return &ProgressRepository{db: s.db}
}

// Get retrieves a user's progress. A user with no progress row yet gets the
// starting position (beginner, level 1, no streak) rather than an error.
func (r *ProgressRepository) Get(userID string) (*Progress, error) {
	p := &Progress{}
	var levelType string

	err := r.db.QueryRow(
		`SELECT user_id, level_type, level_number, streak, updated_at
		 FROM progress WHERE user_id = ?`,
		userID,
	).Scan(&p.UserID, &levelType, &p.LevelNumber, &p.Streak, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &Progress{
				UserID:      userID,
				LevelType:   LevelBeginner,
				LevelNumber: 1,
				Streak:      0,
			}, nil
		}
		return nil, err
	}

	p.LevelType = LevelType(levelType)
	return p, nil
}

// Upsert writes the user's progress, creating the row on first update.
func (r *ProgressRepository) Upsert(p *Progress) error {
	p.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO progress (user_id, level_type, level_number, streak, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			level_type = excluded.level_type,
			level_number = excluded.level_number,
			streak = excluded.streak,
			updated_at = excluded.updated_at`,
		p.UserID, string(p.LevelType), p.LevelNumber, p.Streak, p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}
