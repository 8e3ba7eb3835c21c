package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

// AttendanceRepository persists presence records and computes the
// derived attendance aggregates.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Insert records presence for (student, session). The insert-or-ignore
// makes concurrent duplicate marks resolve to exactly one row with
// both callers observing success. Returns true when a new row was
// stored, false when the mark already existed.
func (r *AttendanceRepository) Insert(ctx context.Context, studentID, sessionID string) (bool, error) {
	const query = `INSERT INTO presence_records (student_id, session_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (student_id, session_id) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query, studentID, sessionID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("insert presence record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check inserted presence rows: %w", err)
	}
	return affected > 0, nil
}

// GroupReport aggregates per-student attendance for a group. Every
// enrolled student appears; percentage is NULL when the group has no
// sessions, avoiding the zero division.
func (r *AttendanceRepository) GroupReport(ctx context.Context, groupID string) ([]models.GroupReportRow, error) {
	const query = `
SELECT s.id AS student_id, s.last_name, s.first_names,
       COUNT(DISTINCT pr.session_id) AS present_count,
       COUNT(DISTINCT se.id) AS total_sessions,
       ROUND(COUNT(DISTINCT pr.session_id)::numeric / NULLIF(COUNT(DISTINCT se.id), 0) * 100, 2) AS percentage
FROM enrollments e
JOIN students s ON s.id = e.student_id
LEFT JOIN sessions se ON se.group_id = e.group_id
LEFT JOIN presence_records pr ON pr.student_id = s.id AND pr.session_id = se.id
WHERE e.group_id = $1
GROUP BY s.id, s.last_name, s.first_names
ORDER BY s.last_name ASC, s.first_names ASC`
	var rows []models.GroupReportRow
	if err := r.db.SelectContext(ctx, &rows, query, groupID); err != nil {
		return nil, fmt.Errorf("group attendance report: %w", err)
	}
	return rows, nil
}

// SessionDetail lists every student enrolled in the session's group
// with a presence flag for that session.
func (r *AttendanceRepository) SessionDetail(ctx context.Context, sessionID, groupID string) ([]models.SessionDetailRow, error) {
	const query = `
SELECT s.id AS student_id, s.last_name, s.first_names,
       (pr.student_id IS NOT NULL) AS present
FROM enrollments e
JOIN students s ON s.id = e.student_id
LEFT JOIN presence_records pr ON pr.student_id = s.id AND pr.session_id = $1
WHERE e.group_id = $2
ORDER BY s.last_name ASC, s.first_names ASC`
	var rows []models.SessionDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, sessionID, groupID); err != nil {
		return nil, fmt.Errorf("session attendance detail: %w", err)
	}
	return rows, nil
}
