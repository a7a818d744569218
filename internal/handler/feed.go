package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
	"github.com/BaseCampCoding/chirper-backend/internal/service"
)

// FeedHandler serves public profile feeds and username lookups.
type FeedHandler struct {
	users  domain.UserRepository
	chirps *service.ChirpService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(users domain.UserRepository, chirps *service.ChirpService) *FeedHandler {
	return &FeedHandler{users: users, chirps: chirps}
}

// HandleFeed returns a user's profile and feed, newest chirp first.
// The feed is a public read; no session is required.
// GET /api/{username}/
// Response: 200 {"chirper": {...}, "chirps": [...]}
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{})
			return
		}
		slog.Error("get user for feed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	feed, err := h.chirps.FeedFor(r.Context(), user)
	if err != nil {
		slog.Error("compose feed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	// Resolve each distinct author once; mentioning chirps may come
	// from authors other than the profile owner.
	authors := map[int64]*domain.User{user.ID: user}
	chirps := make([]ChirpDTO, 0, len(feed))
	for _, c := range feed {
		author, ok := authors[c.AuthorID]
		if !ok {
			author, err = h.users.GetByID(r.Context(), c.AuthorID)
			if err != nil {
				slog.Error("get chirp author", "error", err, "author_id", c.AuthorID)
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
				return
			}
			authors[c.AuthorID] = author
		}
		chirps = append(chirps, toChirpDTO(c, author))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chirper": toChirperDTO(user),
		"chirps":  chirps,
	})
}

// HandleUsernameExists reports whether a username is taken.
// GET /api/username_exists/{username}/
// Response: 200 {"exists": bool}
func (h *FeedHandler) HandleUsernameExists(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	exists, err := h.users.UsernameExists(r.Context(), username)
	if err != nil {
		slog.Error("check username exists", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}
