package store

import (
	"database/sql"
	"time"
)

// Attempt represents one evaluated practice frame.
type Attempt struct {
	ID         string
	UserID     string
	Target     string
	Detected   string
	Confidence float64
	Correct    bool
	CreatedAt  time.Time
}

// LeaderboardEntry aggregates a user's correct attempts.
type LeaderboardEntry struct {
	UserID       string
	Username     string
	CorrectCount int
}

// AttemptRepository provides operations for attempts and the leaderboard.
type AttemptRepository struct {
	db *sql.DB
}

// Attempts returns the attempt repository for this store.
func (s *Store) Attempts() *AttemptRepository {
	return &AttemptRepository{db: s.db}
}

// Create inserts a new attempt into the database.
func (r *AttemptRepository) Create(a *Attempt) error {
	a.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO attempts (id, user_id, target, detected, confidence, correct, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Target, a.Detected, a.Confidence, a.Correct, a.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// ListByUser retrieves a user's attempts, newest first.
func (r *AttemptRepository) ListByUser(userID string, limit int) ([]*Attempt, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, user_id, target, detected, confidence, correct, created_at
		 FROM attempts WHERE user_id = ?
		 ORDER BY created_at DESC, id LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*Attempt
	for rows.Next() {
		a := &Attempt{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.Target, &a.Detected, &a.Confidence, &a.Correct, &a.CreatedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// Leaderboard returns the top users ranked by number of correct attempts.
func (r *AttemptRepository) Leaderboard(limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(
		`SELECT u.id, u.username, COUNT(a.id) AS correct_count
		 FROM attempts a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.correct = 1
		 GROUP BY u.id, u.username
		 ORDER BY correct_count DESC, u.username
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*LeaderboardEntry
	for rows.Next() {
		e := &LeaderboardEntry{}
		if err := rows.Scan(&e.UserID, &e.Username, &e.CorrectCount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
