package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

// NoteRepository persists free-text annotations teachers leave on
// students.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository constructs the repository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a new note. Notes are append-only.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO notes (id, student_id, group_id, title, value, created_at)
		VALUES (:id, :student_id, :group_id, :title, :value, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// ListByStudentGroup returns the notes for a student within a group,
// newest first.
func (r *NoteRepository) ListByStudentGroup(ctx context.Context, studentID, groupID string) ([]models.Note, error) {
	const query = `SELECT id, student_id, group_id, title, value, created_at
FROM notes WHERE student_id = $1 AND group_id = $2 ORDER BY created_at DESC`
	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, studentID, groupID); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}
