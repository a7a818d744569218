package handler

import (
	"net/http"

	"github.com/BaseCampCoding/chirper-backend/internal/domain"
	"github.com/BaseCampCoding/chirper-backend/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, chirps *service.ChirpService, users domain.UserRepository) {
	authHandler := NewAuthHandler(auth)
	chirpHandler := NewChirpHandler(auth, chirps)
	feedHandler := NewFeedHandler(users, chirps)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/signup/", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/login/", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/logout/", authHandler.HandleLogout)
	mux.HandleFunc("POST /api/chirp/", chirpHandler.HandleChirp)
	mux.HandleFunc("GET /api/username_exists/{username}/{$}", feedHandler.HandleUsernameExists)
	mux.HandleFunc("GET /api/{username}/{$}", feedHandler.HandleFeed)
}
