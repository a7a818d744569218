package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
)

// ChirpRepository implements domain.ChirpRepository using SQLite.
type ChirpRepository struct {
	db *sql.DB
}

// NewChirpRepository creates a new SQLite-backed ChirpRepository.
func NewChirpRepository(db *DB) *ChirpRepository {
	return &ChirpRepository{db: db.SqlDB}
}

// Create inserts the chirp and its mention edges in one transaction.
// Each candidate username is resolved against the users table as it
// exists right now; unknown candidates produce no edge and no error.
// The INSERT OR IGNORE plus the (chirp_id, user_id) primary key collapse
// repeated mentions of the same user to a single edge.
func (r *ChirpRepository) Create(ctx context.Context, chirp *domain.Chirp, mentionCandidates []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`INSERT INTO chirps (author_id, message, created_at) VALUES (?, ?, ?)`,
		chirp.AuthorID, chirp.Message, now,
	)
	if err != nil {
		return fmt.Errorf("insert chirp: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	var mentioned []int64
	for _, username := range mentionCandidates {
		var userID int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM users WHERE username = ?`, username,
		).Scan(&userID)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("resolve mention %q: %w", username, err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO chirp_mentions (chirp_id, user_id) VALUES (?, ?)`,
			id, userID,
		)
		if err != nil {
			return fmt.Errorf("insert mention edge: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			mentioned = append(mentioned, userID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit chirp: %w", err)
	}

	chirp.ID = id
	chirp.CreatedAt = now
	chirp.MentionedUserIDs = mentioned
	return nil
}

// FeedFor returns chirps authored by or mentioning the user, newest
// first. Chirps that both belong to the user and mention them appear
// once. Equal timestamps order by insertion, most recent first.
func (r *ChirpRepository) FeedFor(ctx context.Context, userID int64) ([]domain.Chirp, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT c.id, c.author_id, c.message, c.created_at
		 FROM chirps c
		 LEFT JOIN chirp_mentions m ON m.chirp_id = c.id
		 WHERE c.author_id = ? OR m.user_id = ?
		 ORDER BY c.created_at DESC, c.id DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query feed: %w", err)
	}
	defer rows.Close()

	var chirps []domain.Chirp
	for rows.Next() {
		var c domain.Chirp
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chirp: %w", err)
		}
		chirps = append(chirps, c)
	}
	return chirps, rows.Err()
}

func (r *ChirpRepository) MentionedUserIDs(ctx context.Context, chirpID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id FROM chirp_mentions WHERE chirp_id = ? ORDER BY user_id`, chirpID,
	)
	if err != nil {
		return nil, fmt.Errorf("query mentions: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan mention: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ChirpRepository) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chirps WHERE author_id = ?`, authorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count chirps: %w", err)
	}
	return count, nil
}
