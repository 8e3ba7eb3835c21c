package models

import "time"

// Enrollment links a student to a group. A student may be enrolled in
// a group at most once.
type Enrollment struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"student_id"`
	GroupID   string    `db:"group_id" json:"group_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
