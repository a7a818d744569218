package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup, login, logout, and session token resolution.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionRepository
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a new user account and logs it in, returning the user and
// a fresh session token. All field validation runs before anything is
// persisted, so a failed signup leaves no partial user behind.
func (s *AuthService) Signup(ctx context.Context, name, username, email, password string) (*domain.User, string, error) {
	if err := validateSignup(name, username, email, password); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and issues a session token, replacing any
// existing session for the user. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user.ID)
}

// Logout deletes the session for the given token. Logging out an unknown
// or already-expired token is a no-op: logout is always safe to call,
// so clients never have to care whether their session is still live.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.sessions.Delete(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// ResolveToken returns the user owning the given session token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	return user, nil
}

// IsLoggedIn reports whether the user currently has an active session.
func (s *AuthService) IsLoggedIn(ctx context.Context, userID int64) (bool, error) {
	return s.sessions.ExistsForUser(ctx, userID)
}

func (s *AuthService) issueSession(ctx context.Context, userID int64) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	if err := s.sessions.Replace(ctx, &domain.Session{Token: token, UserID: userID}); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func newToken() (string, error) {
	buf := make([]byte, domain.TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
