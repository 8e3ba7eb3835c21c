package models

import "time"

// TeachingAssignment grants a teacher management rights over a group.
// Every teacher-scoped authorization decision checks this relation.
type TeachingAssignment struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacher_id"`
	GroupID   string    `db:"group_id" json:"group_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
