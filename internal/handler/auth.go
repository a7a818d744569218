package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
	"github.com/BaseCampCoding/chirper-backend/internal/service"
)

// AuthHandler handles signup, login, and logout requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup processes a JSON signup request.
// POST /api/signup/
// Request:  {"name":...,"username":...,"email":...,"password":...}
// Response: 201 {"key": token}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, errMalformedRequest)
		return
	}

	_, token, err := h.auth.Signup(r.Context(), req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeFieldErrors(w, ve.Fields)
			return
		}
		slog.Error("signup user", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"key": token})
}

// HandleLogin processes a JSON login request.
// POST /api/login/
// Request:  {"username":...,"password":...}
// Response: 201 {"key": token}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, errMalformedRequest)
		return
	}

	// Absent fields are a shape error, distinct from bad credentials.
	if req.Username == nil || req.Password == nil {
		writeError(w, http.StatusUnprocessableEntity, errInvalidData)
		return
	}

	token, err := h.auth.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, errBadCredentials)
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"key": token})
}

// HandleLogout processes a JSON logout request. Logging out an unknown
// token succeeds; only a missing key field is an error.
// POST /api/logout/
// Request:  {"key": token}
// Response: 200 {}
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key *string `json:"key"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, errMalformedRequest)
		return
	}

	if req.Key == nil {
		writeError(w, http.StatusUnprocessableEntity, errInvalidData)
		return
	}

	if err := h.auth.Logout(r.Context(), *req.Key); err != nil {
		slog.Error("logout user", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{})
}
