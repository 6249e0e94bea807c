package domain

// Session struct - Core domain value: the result of a successful login.
// Immutable once parsed; only a login response with a non-empty session id
// ever produces one. Business calls go to InstanceURL, not the login server.
type Session struct {
	Token       string // opaque session id carried in the SessionHeader of every call
	InstanceURL string // per-org server address returned by login
	UserID      string // id of the authenticated user, the default feed to post to
}
