package middleware

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"servenest/internal/auth/token"
	"servenest/pkg/logger"
)

const SessionCookieName = "token"

const IdentityKey contextKey = "session_identity"

// SessionRequired gates a single route behind a valid session cookie.
// It is a pure gate: it either short-circuits with 401 or binds the
// verified identity into the request context and calls through.
func SessionRequired(tokens *token.Service, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeUnauthenticated(w, "unauthorized access")
				return
			}

			identity, err := tokens.Verify(cookie.Value)
			if err != nil {
				log.Warn("Session token verification failed",
					"request_id", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
				)
				writeUnauthenticated(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

func IdentityFromContext(ctx context.Context) (token.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(token.Identity)
	return identity, ok
}

func writeUnauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
