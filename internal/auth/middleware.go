package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/HeidiChen0/Archool/internal/session"
)

type contextKey string

// SessionKey is the context key for the visitor's session.
const SessionKey contextKey = "session"

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Name   string
	Env    string
	MaxAge int
}

// Sessions attaches a session to every request. Visitors without a valid
// cookie, or whose session expired, get a fresh session and a new cookie.
func Sessions(store *session.Store, tokens *Tokens, cookie CookieConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := resolve(r, store, tokens, cookie.Name, logger)
			if !ok {
				sess = store.Create()
				token, err := tokens.Issue(sess.ID)
				if err != nil {
					logger.ErrorContext(r.Context(), "failed to issue session token", "error", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				SetSessionCookie(w, cookie, token)
				logger.DebugContext(r.Context(), "session created", "session_id", sess.ID)
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolve(r *http.Request, store *session.Store, tokens *Tokens, name string, logger *slog.Logger) (*session.Session, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return nil, false
	}

	id, err := tokens.Validate(c.Value)
	if err != nil {
		logger.WarnContext(r.Context(), "invalid session cookie", "error", err)
		return nil, false
	}

	return store.Get(id)
}

// FromContext extracts the session attached by Sessions.
func FromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}

// SetSessionCookie sets the session token in an HttpOnly cookie.
func SetSessionCookie(w http.ResponseWriter, cfg CookieConfig, token string) {
	sameSite := http.SameSiteStrictMode
	if cfg.Env == "development" || cfg.Env == "local" {
		sameSite = http.SameSiteLaxMode // Allow testing from Postman
	}

	// Secure cookies require HTTPS
	secure := cfg.Env == "production" || cfg.Env == "prod"

	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/",
		MaxAge:   cfg.MaxAge,
	})
}
