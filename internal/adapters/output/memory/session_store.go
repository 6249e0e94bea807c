package memory

import (
	"sync"

	"chatter-notify/internal/domain"
	"chatter-notify/internal/ports/output"
)

// Compile-time check to ensure SessionStore implements the SessionStore interface
var _ output.SessionStore = (*SessionStore)(nil)

// SessionStore struct - Output adapter for in-process session storage.
// Uses sync.Map keyed by the value-comparable Credentials, so entries for
// distinct credentials never collide and the last Put for a key wins.
// Sessions live until Revoke or process exit; there is no expiry timer,
// stale tokens are discovered by the service rejecting them.
type SessionStore struct {
	sessions sync.Map
}

// NewSessionStore creates a new in-process session store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get retrieves the session for the credentials.
// Returns nil if no session is stored; never performs any I/O.
func (m *SessionStore) Get(credentials domain.Credentials) (*domain.Session, error) {
	value, exists := m.sessions.Load(credentials)
	if !exists {
		return nil, nil
	}

	session, ok := value.(domain.Session)
	if !ok {
		// If data is malformed, delete and return nil
		m.sessions.Delete(credentials)
		return nil, nil
	}

	return &session, nil
}

// Put inserts or overwrites the session for the credentials.
func (m *SessionStore) Put(credentials domain.Credentials, session domain.Session) error {
	m.sessions.Store(credentials, session)
	return nil
}

// Revoke removes the session for the credentials.
// This operation is idempotent - revoking an absent entry does not return an error.
func (m *SessionStore) Revoke(credentials domain.Credentials) error {
	m.sessions.Delete(credentials)
	return nil
}
