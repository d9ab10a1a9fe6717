package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vango-dev/vango-ui/internal/auth"
	"github.com/vango-dev/vango-ui/internal/middleware"
	"github.com/vango-dev/vango-ui/internal/users"
)

const maxBodyBytes = 1 << 20

// loginResponse is returned by Register and Login. Token is for clients
// that send an Authorization header instead of the session cookie.
type loginResponse struct {
	User      users.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Register creates an account and signs it in.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var creds users.Credentials
	if !h.decode(w, r, &creds) {
		return
	}

	user, err := h.accounts.Users.Register(r.Context(), creds)
	if err != nil {
		h.userError(w, "register", err)
		return
	}

	h.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	h.signIn(w, http.StatusCreated, user)
}

// Login checks credentials and starts a session.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds users.Credentials
	if !h.decode(w, r, &creds) {
		return
	}

	user, err := h.accounts.Users.Login(r.Context(), creds)
	if err != nil {
		h.userError(w, "login", err)
		return
	}

	h.signIn(w, http.StatusOK, user)
}

// Logout clears the session cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.accounts.Sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the signed-in identity.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         session.UserID,
		"username":   session.Username,
		"expires_at": session.ExpiresAt,
	})
}

// ListUsers returns every account, newest first.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.accounts.Users.List(r.Context())
	if err != nil {
		h.userError(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreateUser adds an account with optional profile fields on behalf of a
// signed-in user.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req users.CreateRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.accounts.Users.Create(r.Context(), req)
	if err != nil {
		h.userError(w, "create user", err)
		return
	}

	h.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"by", middleware.GetSession(r.Context()).Username,
	)
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handlers) signIn(w http.ResponseWriter, status int, user users.User) {
	if err := h.accounts.Sessions.Set(w, &auth.SessionData{UserID: user.ID, Username: user.Username}); err != nil {
		h.logger.Error("failed to set session", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	token, expires, err := h.accounts.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	writeJSON(w, status, loginResponse{User: user, Token: token, ExpiresAt: expires})
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handlers) userError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, users.ErrInvalidUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, users.ErrUsernameTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, users.ErrHashing):
		h.logger.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, users.ErrHashing.Error())
	default:
		h.logger.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
