package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
	"github.com/BaseCampCoding/chirper-backend/internal/service"
)

// ChirpHandler handles posting chirps.
type ChirpHandler struct {
	auth   *service.AuthService
	chirps *service.ChirpService
}

// NewChirpHandler creates a new ChirpHandler.
func NewChirpHandler(auth *service.AuthService, chirps *service.ChirpService) *ChirpHandler {
	return &ChirpHandler{auth: auth, chirps: chirps}
}

// HandleChirp posts a new chirp for the user identified by the session key.
// POST /api/chirp/
// Request:  {"key": token, "message": ...}
// Response: 201 {}
func (h *ChirpHandler) HandleChirp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key     *string `json:"key"`
		Message *string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, errMalformedRequest)
		return
	}

	if req.Key == nil {
		writeError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	user, err := h.auth.ResolveToken(r.Context(), *req.Key)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			writeError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}
		slog.Error("resolve session token", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	var message string
	if req.Message != nil {
		message = *req.Message
	}

	if _, err := h.chirps.Post(r.Context(), user, message); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeFieldErrors(w, ve.Fields)
			return
		}
		slog.Error("post chirp", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{})
}
