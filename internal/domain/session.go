package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a time-boxed attendance-taking event. The token is the external
// reference students redeem; the listing surface exposes the internal id, not
// the token.
type Session struct {
	ID        uuid.UUID `db:"id" json:"sessionId"`
	Token     string    `db:"token" json:"-"`
	Name      string    `db:"name" json:"sessionName"`
	Section   string    `db:"section" json:"section"`
	CreatedBy string    `db:"created_by" json:"createdBy"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
	Active    bool      `db:"active" json:"active"`
}

// Expired reports whether the session can no longer accept check-ins. Expiry
// is evaluated lazily at check-in time; there is no background sweeper.
func (s *Session) Expired(now time.Time) bool {
	return !s.Active || now.After(s.ExpiresAt)
}
