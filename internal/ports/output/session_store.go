package output

import "chatter-notify/internal/domain"

// SessionStore interface - Output port
// Credentials-keyed store of login sessions, shared by every client in the
// process so repeated calls with the same credentials reuse one login.
// Implementations must be thread-safe; concurrent callers may both miss and
// log in independently, with the later Put winning. There is no expiry:
// staleness is discovered reactively by the caller and handled via Revoke.
type SessionStore interface {
	// Get retrieves the session for the credentials, or nil on a miss.
	// Pure lookup, no side effects.
	Get(credentials domain.Credentials) (*domain.Session, error)

	// Put inserts or overwrites the session for the credentials.
	Put(credentials domain.Credentials, session domain.Session) error

	// Revoke removes the session for the credentials if present.
	// This operation is idempotent - revoking an absent entry is a no-op.
	Revoke(credentials domain.Credentials) error
}
