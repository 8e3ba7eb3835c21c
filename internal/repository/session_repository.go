package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

// SessionRepository persists class sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if session.OpenedAt.IsZero() {
		session.OpenedAt = now
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	const query = `INSERT INTO sessions (id, group_id, opened_at, token, note, created_at)
		VALUES (:id, :group_id, :opened_at, :token, :note, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// FindByID returns a session by primary key.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	const query = `SELECT id, group_id, opened_at, token, note, created_at FROM sessions WHERE id = $1`
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// FindByToken resolves a redemption token to its session. A token
// maps to exactly one session; deleted sessions make their token
// permanently unresolvable.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	const query = `SELECT id, group_id, opened_at, token, note, created_at FROM sessions WHERE token = $1`
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, token); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByGroup returns the group's sessions, newest first.
func (r *SessionRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Session, error) {
	const query = `SELECT id, group_id, opened_at, token, note, created_at
FROM sessions WHERE group_id = $1 ORDER BY opened_at DESC`
	var sessions []models.Session
	if err := r.db.SelectContext(ctx, &sessions, query, groupID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// DeleteInGroup removes a session only when it belongs to the group,
// preventing cross-group deletion through an unrelated session id.
// Presence records go with it via the FK cascade.
func (r *SessionRepository) DeleteInGroup(ctx context.Context, sessionID, groupID string) error {
	const query = `DELETE FROM sessions WHERE id = $1 AND group_id = $2`
	result, err := r.db.ExecContext(ctx, query, sessionID, groupID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted session rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
