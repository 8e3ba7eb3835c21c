package models

import "time"

// Student represents an enrolled learner. DocumentNumber is the
// self-service lookup key students type in when redeeming a session
// token.
type Student struct {
	ID             string    `db:"id" json:"id"`
	DocumentNumber string    `db:"document_number" json:"document_number"`
	LastName       string    `db:"last_name" json:"last_name"`
	FirstNames     string    `db:"first_names" json:"first_names"`
	EnrollmentCode string    `db:"enrollment_code" json:"enrollment_code"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
