package domain

import "context"

// Session is an opaque login token bound to a single user. A user has at
// most one active session; issuing a new one replaces the old.
type Session struct {
	Token  string
	UserID int64
}

// TokenBytes is the entropy of a session token. The hex encoding makes
// tokens twice this many characters long.
const TokenBytes = 40

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	// Replace atomically deletes any existing session for the session's
	// user and stores the new one. Concurrent replaces for the same user
	// are last-writer-wins.
	Replace(ctx context.Context, session *Session) error
	GetUserID(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
}
