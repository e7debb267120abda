package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Users table - account credentials and email verification state
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			email_verified INTEGER NOT NULL DEFAULT 0,
			verification_code TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Progress table - one row per user tracking the current level
		`CREATE TABLE IF NOT EXISTS progress (
			user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			level_type TEXT NOT NULL DEFAULT 'beginner'
				CHECK(level_type IN ('beginner', 'pro', 'expert')),
			level_number INTEGER NOT NULL DEFAULT 1,
			streak INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Attempts table - one row per classified practice frame
		`CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			target TEXT NOT NULL,
			detected TEXT NOT NULL,
			confidence REAL NOT NULL,
			correct INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_user_id ON attempts(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_correct ON attempts(correct)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
