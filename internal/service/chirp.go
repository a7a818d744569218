package service

import (
	"context"
	"strings"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
)

// ChirpService handles posting chirps and composing feeds.
type ChirpService struct {
	chirps domain.ChirpRepository
}

// NewChirpService creates a new ChirpService.
func NewChirpService(chirps domain.ChirpRepository) *ChirpService {
	return &ChirpService{chirps: chirps}
}

// Post validates and stores a chirp for the given author. Mention
// candidates are extracted from the message here and resolved against
// the user store inside the same transaction as the insert, so a chirp
// never exists without its mention edges.
func (s *ChirpService) Post(ctx context.Context, author *domain.User, message string) (*domain.Chirp, error) {
	if err := validateChirp(message); err != nil {
		return nil, err
	}

	chirp := &domain.Chirp{
		AuthorID: author.ID,
		Message:  message,
	}

	if err := s.chirps.Create(ctx, chirp, MentionCandidates(message)); err != nil {
		return nil, err
	}

	return chirp, nil
}

// FeedFor returns the user's feed: chirps they authored plus chirps
// mentioning them, newest first. Recomputed from store state on every call.
func (s *ChirpService) FeedFor(ctx context.Context, user *domain.User) ([]domain.Chirp, error) {
	return s.chirps.FeedFor(ctx, user.ID)
}

// MentionCandidates extracts candidate usernames from a message. A
// candidate is any whitespace-delimited token starting with "@", minus
// the leading "@". Trailing punctuation stays part of the candidate
// ("@bob!" yields "bob!"), which rarely matches a real user; this
// mirrors the original tokenizer and is kept deliberately. Duplicates
// are collapsed, preserving first-seen order.
func MentionCandidates(message string) []string {
	var candidates []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(message) {
		if !strings.HasPrefix(token, "@") {
			continue
		}
		candidate := token[1:]
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
	}
	return candidates
}
