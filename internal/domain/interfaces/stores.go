package interfaces

import domaintypes "anarchyauth/internal/domain/types"

// SessionStore holds active sessions for the lifetime of the process.
type SessionStore interface {
	// Create inserts a new session for kp and returns its identifier.
	Create(kp domaintypes.KeyPair, method domaintypes.Method) (domaintypes.SessionID, error)
	// Get returns the session or ErrSessionNotFound when absent or expired.
	Get(id domaintypes.SessionID) (domaintypes.Session, error)
	// Delete removes the session; deleting an unknown id is a no-op.
	Delete(id domaintypes.SessionID)
	// Len reports the number of sessions currently held.
	Len() int
}
