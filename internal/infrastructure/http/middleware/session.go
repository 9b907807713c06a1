package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the dashboard session id.
const SessionCookie = "rentdesk_session"

type sessionKey struct{}

// Session assigns every client a stable session id. Requests without a
// valid session cookie get a fresh random id and a cookie to keep it.
type Session struct {
	Secure bool
	MaxAge time.Duration
}

// Handle is a Chi middleware that stores the session id in the request context.
func (s Session) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}

		if id == "" {
			id = uuid.NewString()
			slog.DebugContext(r.Context(), "session started", "path", r.URL.Path)
		}

		// Refreshed on every request so idle expiry follows activity.
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			MaxAge:   int(s.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   s.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), id)))
	})
}

// WithSession returns a copy of ctx carrying the session id.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session id stored by Session, or "".
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
