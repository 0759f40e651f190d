package domain

import "time"

// Session holds the currently authenticated identity, if any. Authenticated
// is true iff User is non-nil; the auth use case keeps the two consistent.
type Session struct {
	User          *User     `json:"user,omitempty"`
	Authenticated bool      `json:"authenticated"`
	IssuedAt      time.Time `json:"issued_at,omitzero"`
}
