package models

import "time"

// PresenceRecord is the durable fact that a student attended a
// session. At most one record exists per (student, session); records
// are inserted-or-ignored and removed only by session deletion.
type PresenceRecord struct {
	StudentID string    `db:"student_id" json:"student_id"`
	SessionID string    `db:"session_id" json:"session_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BulkMarkResult summarises a manual bulk-mark call. Marked counts
// the rows applied; entries that were unknown or unenrolled are
// skipped without failing the batch.
type BulkMarkResult struct {
	Requested int `json:"requested"`
	Marked    int `json:"marked"`
	Skipped   int `json:"skipped"`
}

// GroupReportRow is one student's aggregate attendance within a group.
// Percentage is nil when the group has no sessions yet.
type GroupReportRow struct {
	StudentID     string   `db:"student_id" json:"student_id"`
	LastName      string   `db:"last_name" json:"last_name"`
	FirstNames    string   `db:"first_names" json:"first_names"`
	PresentCount  int      `db:"present_count" json:"present_count"`
	TotalSessions int      `db:"total_sessions" json:"total_sessions"`
	Percentage    *float64 `db:"percentage" json:"percentage"`
}

// SessionDetailRow lists one enrolled student with their presence
// status for a specific session.
type SessionDetailRow struct {
	StudentID  string `db:"student_id" json:"student_id"`
	LastName   string `db:"last_name" json:"last_name"`
	FirstNames string `db:"first_names" json:"first_names"`
	Present    bool   `db:"present" json:"present"`
}
