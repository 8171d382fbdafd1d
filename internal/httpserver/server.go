// internal/httpserver/server.go
//
// HTTP server wiring for the LetterLeap backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/stats", "/debug/words".
//   - Ladder endpoints: POST /ladder/new, POST /ladder/guess, GET /ladder/{id}.
//
// Notes:
//   - The server is a thin adapter: every guess goes through game.Session.SubmitGuess.
//   - Session tokens (JWT) bind a client to the game it created.
//   - The results journal is optional; when nil, wins are not recorded and
//     /stats answers 503.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterleap/internal/game"
	"github.com/robalobadob/letterleap/internal/ladder"
	"github.com/robalobadob/letterleap/internal/results"
	"github.com/robalobadob/letterleap/internal/store"
)

// WordList is the dictionary as the server sees it.
type WordList interface {
	game.Dictionary
	Len() int
	Ready() bool
}

// Journal records completed ladders.
type Journal interface {
	Insert(ctx context.Context, r results.Result) error
	Stats(ctx context.Context, start, target string) (results.Stats, error)
}

// Deps are the collaborators and settings a Server needs.
type Deps struct {
	Store         store.Store
	Words         WordList
	Journal       Journal // optional
	Puzzle        game.Puzzle
	Rule          ladder.Rule
	Secret        []byte
	TokenTTL      time.Duration
	ClientOrigin  string
	SecureCookies bool
}

// Server bundles router, session store, dictionary and journal.
type Server struct {
	r       *chi.Mux
	store   store.Store
	words   WordList
	journal Journal
	puzzle  game.Puzzle
	rule    ladder.Rule
	tokens  *tokenIssuer
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.TokenTTL <= 0 {
		d.TokenTTL = 24 * time.Hour
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   d.Store,
		words:   d.Words,
		journal: d.Journal,
		puzzle:  d.Puzzle,
		rule:    d.Rule,
		tokens:  &tokenIssuer{secret: d.Secret, ttl: d.TokenTTL, secure: d.SecureCookies},
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           60 * 15,
	}))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"letterleap","endpoints":["/health","/stats","POST /ladder/new","POST /ladder/guess","GET /ladder/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ready": s.words.Ready(), "size": s.words.Len()})
	})
	s.r.Get("/stats", s.handleStats)

	s.mountLadder(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleStats reports completed ladders for the configured puzzle.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		writeError(w, http.StatusServiceUnavailable, "stats_unavailable", "results journal is disabled")
		return
	}
	st, err := s.journal.Stats(r.Context(), s.puzzle.Start, s.puzzle.Target)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("load stats")
		writeError(w, http.StatusInternalServerError, "db_error", "could not load stats")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}
