package httpserver

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
)

// ctxGameKey is the context key for the game ID a request's token grants.
type ctxGameKey struct{}

// requireSession enforces a valid session token and stores its game ID in
// the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerOrCookie(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
				return
			}
			gid, err := s.tokens.verify(tok)
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("rejected session token")
				writeError(w, http.StatusUnauthorized, "invalid_token", "invalid session token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxGameKey{}, gid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenGameID returns the game ID placed in the context by requireSession.
func tokenGameID(r *http.Request) string {
	gid, _ := r.Context().Value(ctxGameKey{}).(string)
	return gid
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog logs one line per request with the chi request ID.
func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}
