package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

// TeachingAssignmentRepository reads the teacher-group authorization
// relation.
type TeachingAssignmentRepository struct {
	db *sqlx.DB
}

// NewTeachingAssignmentRepository constructs the repository.
func NewTeachingAssignmentRepository(db *sqlx.DB) *TeachingAssignmentRepository {
	return &TeachingAssignmentRepository{db: db}
}

// Exists checks whether the teacher is assigned to the group.
func (r *TeachingAssignmentRepository) Exists(ctx context.Context, teacherID, groupID string) (bool, error) {
	const query = `SELECT 1 FROM teaching_assignments WHERE teacher_id = $1 AND group_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID, groupID); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("check teaching assignment: %w", err)
	}
	return true, nil
}

// ListGroupsByTeacher returns the groups (with subjects) the teacher
// is assigned to.
func (r *TeachingAssignmentRepository) ListGroupsByTeacher(ctx context.Context, teacherID string) ([]models.GroupDetail, error) {
	const query = `
SELECT sub.id AS subject_id, sub.name AS subject_name, g.id AS group_id, g.name AS group_name
FROM teaching_assignments ta
JOIN groups g ON g.id = ta.group_id
JOIN subjects sub ON sub.id = g.subject_id
WHERE ta.teacher_id = $1
ORDER BY sub.name ASC, g.name ASC`
	var groups []models.GroupDetail
	if err := r.db.SelectContext(ctx, &groups, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher groups: %w", err)
	}
	return groups, nil
}
