// Package http
package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"inkwell/internal/adapters/http/response"
	"inkwell/internal/adapters/redis"
	"inkwell/internal/domain"
	"inkwell/internal/logger"
)

type AuthHandler struct {
	svc     domain.AuthService
	limiter *redis.LoginLimiter
	log     logger.Logger
}

func NewAuthHandler(svc domain.AuthService, limiter *redis.LoginLimiter, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		limiter: limiter,
		log:     log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := ValidateStruct(&req); len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, err := h.svc.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			response.Error(w, http.StatusBadRequest, "This login is occupied by another person")
			return
		}

		h.log.Error("auth: registration failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// Login consumes form data (username, password), OAuth2 password-grant
// style, and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	pass := r.PostFormValue("password")
	if username == "" || pass == "" {
		response.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if !h.limiter.Allow(r.Context(), limiterKey(username, r)) {
		response.Error(w, http.StatusTooManyRequests, "Too many login attempts")
		return
	}

	tokens, err := h.svc.Login(r.Context(), username, pass)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			response.Error(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}

		h.log.Error("auth: login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// TokenRelevance only answers if the auth middleware let the request
// through, so reaching it means the token is still valid.
func (h *AuthHandler) TokenRelevance(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusOK, "Token is relevant")
}

func limiterKey(username string, r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return username + ":" + host
}
