package models

import "time"

// Note is an append-only free-text annotation a teacher leaves on a
// student within a group (typically a grade).
type Note struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"student_id"`
	GroupID   string    `db:"group_id" json:"group_id"`
	Title     string    `db:"title" json:"title"`
	Value     string    `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
