package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Massi21022535/Asistencia-Back/internal/models"
)

// GroupRepository reads subjects and their teaching groups.
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository constructs the repository.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// ListAll returns every group joined with its subject. Used by the
// director, whose visibility is unrestricted.
func (r *GroupRepository) ListAll(ctx context.Context) ([]models.GroupDetail, error) {
	const query = `
SELECT sub.id AS subject_id, sub.name AS subject_name, g.id AS group_id, g.name AS group_name
FROM groups g
JOIN subjects sub ON sub.id = g.subject_id
ORDER BY sub.name ASC, g.name ASC`
	var groups []models.GroupDetail
	if err := r.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}
