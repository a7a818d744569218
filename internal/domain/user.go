package domain

import (
	"context"
	"time"
)

// User represents a registered chirper and their public profile.
type User struct {
	ID           int64
	Username     string
	Email        string
	Name         string
	Description  string
	Location     string
	Website      string
	PasswordHash string
	Joined       time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByToken resolves a session token to its owning user.
	GetByToken(ctx context.Context, token string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)
}
