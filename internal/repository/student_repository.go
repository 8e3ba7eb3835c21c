package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

// StudentRepository handles persistence of students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByDocument returns the student with the given document number.
func (r *StudentRepository) FindByDocument(ctx context.Context, documentNumber string) (*models.Student, error) {
	const query = `SELECT id, document_number, last_name, first_names, enrollment_code, created_at
FROM students WHERE document_number = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, documentNumber); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindEnrolledByDocument resolves a document number to a student
// enrolled in the given group. sql.ErrNoRows covers both unknown
// documents and students without an enrollment in the group.
func (r *StudentRepository) FindEnrolledByDocument(ctx context.Context, documentNumber, groupID string) (*models.Student, error) {
	const query = `SELECT s.id, s.document_number, s.last_name, s.first_names, s.enrollment_code, s.created_at
FROM students s
JOIN enrollments e ON e.student_id = s.id
WHERE s.document_number = $1 AND e.group_id = $2`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, documentNumber, groupID); err != nil {
		return nil, err
	}
	return &student, nil
}

// ListByGroup returns the students enrolled in a group ordered for
// roster display.
func (r *StudentRepository) ListByGroup(ctx context.Context, groupID string) ([]models.Student, error) {
	const query = `SELECT s.id, s.document_number, s.last_name, s.first_names, s.enrollment_code, s.created_at
FROM students s
JOIN enrollments e ON e.student_id = s.id
WHERE e.group_id = $1
ORDER BY s.last_name ASC, s.first_names ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, groupID); err != nil {
		return nil, fmt.Errorf("list group students: %w", err)
	}
	return students, nil
}
