package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"family_expenses/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL = `INSERT INTO sessions (id, name, challenge, expires_at) VALUES (?, ?, ?, ?)`
	selectSessionSQL = `SELECT id, name, challenge, expires_at FROM sessions WHERE id = ? AND expires_at > ?`
	updateSessionSQL = `UPDATE sessions SET name = ?, challenge = ? WHERE id = ?`
	deleteSessionSQL = `DELETE FROM sessions WHERE id = ?`
	purgeSessionsSQL = `DELETE FROM sessions WHERE expires_at <= ?`
)

// sqliteTimeFormat matches the TIMESTAMP layout used across the schema.
const sqliteTimeFormat = "2006-01-02 15:04:05"

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Create stores a fresh session row.
func (r *SessionRepository) Create(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL,
		s.ID,
		nullIfEmpty(s.Name),
		nullIfEmpty(s.Challenge),
		s.ExpiresAt.UTC().Format(sqliteTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get loads a live session by token. Unknown and expired tokens both come
// back as (nil, nil); callers cannot tell the two apart on purpose.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	var (
		s               models.Session
		name, challenge sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectSessionSQL,
		id, time.Now().UTC().Format(sqliteTimeFormat),
	).Scan(&s.ID, &name, &challenge, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	s.Name = name.String
	s.Challenge = challenge.String
	return &s, nil
}

// Update rewrites the mutable session fields (bound identity, challenge).
func (r *SessionRepository) Update(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, updateSessionSQL,
		nullIfEmpty(s.Name), nullIfEmpty(s.Challenge), s.ID)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Delete destroys a session by token. Deleting an unknown token is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired purges sessions past their expiry.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, purgeSessionsSQL,
		time.Now().UTC().Format(sqliteTimeFormat))
	if err != nil {
		return fmt.Errorf("purge expired sessions: %w", err)
	}
	return nil
}
