package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
)

// SessionRepository implements domain.SessionRepository using SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite-backed SessionRepository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db.SqlDB}
}

// Replace deletes any existing session for the session's user and
// inserts the new one in a single transaction. The UNIQUE(user_id)
// constraint keeps concurrent replaces last-writer-wins: whichever
// transaction commits last owns the surviving token.
func (r *SessionRepository) Replace(ctx context.Context, session *domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, session.UserID); err != nil {
		return fmt.Errorf("delete old session: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id) VALUES (?, ?)`, session.Token, session.UserID,
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return tx.Commit()
}

func (r *SessionRepository) GetUserID(ctx context.Context, token string) (int64, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id FROM sessions WHERE token = ?`, token,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("query session: %w", err)
	}
	return userID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sessions WHERE user_id = ?)`, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query session exists: %w", err)
	}
	return exists, nil
}
