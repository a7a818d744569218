package domain

import (
	"context"
	"time"
)

// MaxChirpLength is the message length cap, in characters.
const MaxChirpLength = 280

// Chirp is a single short message. MentionedUserIDs is derived once at
// creation from the message text and never recomputed.
type Chirp struct {
	ID               int64
	AuthorID         int64
	Message          string
	CreatedAt        time.Time
	MentionedUserIDs []int64
}

// ChirpRepository defines persistence operations for chirps and their
// mention edges.
type ChirpRepository interface {
	// Create inserts the chirp and, in the same transaction, resolves
	// each candidate username against existing users and records one
	// mention edge per match. Candidates that match no user are dropped.
	Create(ctx context.Context, chirp *Chirp, mentionCandidates []string) error
	// FeedFor returns chirps authored by or mentioning the user,
	// newest first, deduplicated by chirp ID.
	FeedFor(ctx context.Context, userID int64) ([]Chirp, error)
	MentionedUserIDs(ctx context.Context, chirpID int64) ([]int64, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}
