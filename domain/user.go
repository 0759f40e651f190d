package domain

import (
	"strings"
	"time"
	"unicode"
)

// User represents an identity in the workspace. Identities are immutable once
// created; there is no profile-update operation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	Initials     string    `json:"initials"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Initials derives avatar-fallback initials from a display name: the first
// rune of each whitespace-separated token, upper-cased and concatenated.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		for _, r := range token {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
