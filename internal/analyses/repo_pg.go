package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. The outcome is stored as a single
// jsonb document; sessions are read far more often than written and never
// queried by their internals.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (id, job_role, outcome, created_at)
VALUES ($1, $2, $3, $4)`

	payload, err := json.Marshal(session.Outcome)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, session.ID, session.JobRole, payload, session.CreatedAt)
	return err
}

// GetByID returns a session by ID.
func (r *PGRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	const query = `
SELECT id, job_role, outcome, created_at
FROM sessions
WHERE id = $1
LIMIT 1`

	var s Session
	var outcome []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(&s.ID, &s.JobRole, &outcome, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if err := json.Unmarshal(outcome, &s.Outcome); err != nil {
		return Session{}, err
	}
	return s, nil
}

var _ Repo = (*PGRepo)(nil)
