package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vango-dev/vango-ui/internal/auth"
)

type contextKey string

// SessionContextKey is the context key for the session.
const SessionContextKey contextKey = "session"

// Session returns a middleware that loads the caller's identity into the
// request context. A valid bearer token takes precedence over the session
// cookie. Either source may be nil.
func Session(store *auth.SessionStore, tokens *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session := load(r, store, tokens); session != nil {
				ctx := context.WithValue(r.Context(), SessionContextKey, session)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func load(r *http.Request, store *auth.SessionStore, tokens *auth.TokenIssuer) *auth.SessionData {
	if tokens != nil {
		if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
			if session, err := tokens.Verify(strings.TrimSpace(token)); err == nil {
				return session
			}
		}
	}
	if store != nil {
		if session, err := store.Get(r); err == nil {
			return session
		}
	}
	return nil
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) *auth.SessionData {
	session, ok := ctx.Value(SessionContextKey).(*auth.SessionData)
	if !ok {
		return nil
	}
	return session
}

// RequireAuth rejects requests without a session with a 401 JSON error.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetSession(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
