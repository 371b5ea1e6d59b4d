package types

import "time"

// Session binds a derived keypair to an opaque identifier. Sessions are never
// mutated after creation; the store hands out copies.
type Session struct {
	ID        SessionID `json:"id"`
	KeyPair   KeyPair   `json:"-"`
	Method    Method    `json:"method"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExpiredAt reports whether the session is past its expiry at now. A zero
// ExpiresAt never expires.
func (s Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
