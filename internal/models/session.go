package models

import "time"

// SessionMode selects how attendance is collected for a session.
type SessionMode string

const (
	// SessionModeToken issues a redemption token students use to mark
	// themselves present.
	SessionModeToken SessionMode = "token"
	// SessionModeManual creates a session without a token; the teacher
	// marks attendance in bulk.
	SessionModeManual SessionMode = "manual"
)

// Valid returns true when the mode is a supported value.
func (m SessionMode) Valid() bool {
	return m == SessionModeToken || m == SessionModeManual
}

// Session is one class meeting of a group. Token is present only for
// token-mode sessions and stays redeemable until the session row is
// deleted; there is no expiry window.
type Session struct {
	ID        string    `db:"id" json:"id"`
	GroupID   string    `db:"group_id" json:"group_id"`
	OpenedAt  time.Time `db:"opened_at" json:"opened_at"`
	Token     *string   `db:"token" json:"token,omitempty"`
	Note      *string   `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OpenSessionResult is returned after opening a session. For token
// mode RedemptionLink is the shareable URL the frontend renders as a
// QR code.
type OpenSessionResult struct {
	Session        Session `json:"session"`
	RedemptionLink *string `json:"redemption_link,omitempty"`
}
