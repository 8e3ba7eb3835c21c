package models

// Subject is a course of study; groups are its teaching sections.
type Subject struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Group is a teaching section belonging to exactly one subject.
type Group struct {
	ID        string `db:"id" json:"id"`
	SubjectID string `db:"subject_id" json:"subject_id"`
	Name      string `db:"name" json:"name"`
}

// GroupDetail joins a group with its subject for listings.
type GroupDetail struct {
	SubjectID   string `db:"subject_id" json:"subject_id"`
	SubjectName string `db:"subject_name" json:"subject_name"`
	GroupID     string `db:"group_id" json:"group_id"`
	GroupName   string `db:"group_name" json:"group_name"`
}
