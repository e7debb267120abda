package store

import (
	"database/sql"
	"errors"
	"time"
)

// User represents an account stored in the database.
type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string
	EmailVerified    bool
	VerificationCode string
	CreatedAt        time.Time
}

// UserRepository provides CRUD operations for users.
type UserRepository struct {
	db *sql.DB
}

// Users returns the user repository for this store.
func (s *Store) Users() *UserRepository {
	return &UserRepository{db: s.db}
}

// Create inserts a new user into the database.
func (r *UserRepository) Create(u *User) error {
	u.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO users (id, username, email, password_hash, email_verified, verification_code, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.EmailVerified, u.VerificationCode, u.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepository) GetByID(id string) (*User, error) {
	return r.get(`SELECT id, username, email, password_hash, email_verified, verification_code, created_at
		 FROM users WHERE id = ?`, id)
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(username string) (*User, error) {
	return r.get(`SELECT id, username, email, password_hash, email_verified, verification_code, created_at
		 FROM users WHERE username = ?`, username)
}

// GetByEmail retrieves a user by email address.
func (r *UserRepository) GetByEmail(email string) (*User, error) {
	return r.get(`SELECT id, username, email, password_hash, email_verified, verification_code, created_at
		 FROM users WHERE email = ?`, email)
}

func (r *UserRepository) get(query string, arg any) (*User, error) {
	u := &User{}

	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.EmailVerified, &u.VerificationCode, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

// Verify marks the user's email as verified if the code matches.
// Returns ErrNotFound when no user carries the email/code pair.
func (r *UserRepository) Verify(email, code string) error {
	res, err := r.db.Exec(
		`UPDATE users SET email_verified = 1, verification_code = ''
		 WHERE email = ? AND verification_code = ? AND verification_code != ''`,
		email, code,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
