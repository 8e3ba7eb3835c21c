package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnrollmentRepository reads the student-group enrollment relation.
// Enrollments are provisioned out of band; this core only consults
// them.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// IsEnrolled checks whether the student is enrolled in the group.
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, studentID, groupID string) (bool, error) {
	const query = `SELECT 1 FROM enrollments WHERE student_id = $1 AND group_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, studentID, groupID); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}
