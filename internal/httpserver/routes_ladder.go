// internal/httpserver/routes_ladder.go
//
// HTTP routes for playing a ladder.
//   - POST /ladder/new   → start a session for the configured puzzle, issue a token
//   - POST /ladder/guess → submit a guess (token required, must match gameId)
//   - GET  /ladder/{id}  → read-only snapshot of the session (token required)
//
// Rejected guesses answer 422 with the rejection reason; the session is
// unchanged. A winning guess is recorded in the results journal (best effort).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/letterleap/internal/game"
	"github.com/robalobadob/letterleap/internal/ladder"
	"github.com/robalobadob/letterleap/internal/results"
	"github.com/robalobadob/letterleap/internal/store"
)

// mountLadder registers all /ladder routes.
func (s *Server) mountLadder(r chi.Router) {
	r.Route("/ladder", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.With(s.requireSession()).Post("/guess", s.handleGuess)
		r.With(s.requireSession()).Get("/{id}", s.handleSnapshot)
	})
}

// -----------------------------------------------------------------------------
// /ladder/new

type newRes struct {
	GameID string      `json:"gameId"`
	Token  string      `json:"token"`
	Start  string      `json:"start"`
	Target string      `json:"target"`
	Length int         `json:"length"`
	Rule   ladder.Rule `json:"rule"`
}

// handleNew creates a session, stores it, and returns a token bound to it.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	g := game.New(s.puzzle, s.words, game.WithRule(s.rule))
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", "could not start a game")
		return
	}
	tok, exp, err := s.tokens.sign(g.ID())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed", "could not start a game")
		return
	}
	s.tokens.setCookie(w, tok, exp)
	hlog.FromRequest(r).Info().Str("gameId", g.ID()).Str("start", g.Start()).Str("target", g.Target()).Msg("ladder started")

	writeJSON(w, http.StatusOK, newRes{
		GameID: g.ID(),
		Token:  tok,
		Start:  g.Start(),
		Target: g.Target(),
		Length: g.Length(),
		Rule:   g.Rule(),
	})
}

// -----------------------------------------------------------------------------
// /ladder/guess

type guessReq struct {
	GameID string `json:"gameId"` // optional; defaults to the token's game
	Guess  string `json:"guess"`
}

type guessRes struct {
	Accepted bool            `json:"accepted"`
	Word     string          `json:"word,omitempty"`
	Feedback []ladder.Status `json:"feedback,omitempty"`
	Reason   game.Reason     `json:"reason,omitempty"`
	Error    string          `json:"error,omitempty"`
	Steps    int             `json:"steps"`
	Won      bool            `json:"won"`
	JustWon  bool            `json:"justWon"`
	Message  string          `json:"message,omitempty"` // win message, once won
}

// handleGuess submits one guess to the caller's session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	gid := tokenGameID(r)
	if req.GameID == "" {
		req.GameID = gid
	}
	if req.GameID != gid {
		writeError(w, http.StatusUnauthorized, "token_mismatch", "token does not grant this game")
		return
	}

	var (
		res     game.Result
		steps   int
		elapsed time.Duration
		start   string
		target  string
	)
	err := s.store.Update(r.Context(), gid, func(g *game.Session) error {
		res = g.SubmitGuess(req.Guess)
		steps, elapsed = g.Steps(), time.Since(g.StartedAt())
		start, target = g.Start(), g.Target()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "no such game")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", gid).Msg("update session")
		writeError(w, http.StatusInternalServerError, "update_failed", "could not apply guess")
		return
	}

	out := guessRes{Steps: steps, Won: res.Won}
	if res.Won {
		out.Message = game.WinMessage(steps)
	}
	if !res.Accepted() {
		out.Reason = res.Rejection.Reason
		out.Error = res.Rejection.Error()
		hlog.FromRequest(r).Debug().Str("gameId", gid).Str("reason", string(out.Reason)).Msg("guess rejected")
		writeJSON(w, http.StatusUnprocessableEntity, out)
		return
	}

	out.Accepted = true
	out.Word, out.Feedback, out.JustWon = res.Word, res.Feedback, res.JustWon

	if res.JustWon {
		hlog.FromRequest(r).Info().Str("gameId", gid).Int("steps", steps).Msg("ladder completed")
		s.recordWin(r, results.Result{
			GameID:    gid,
			Start:     start,
			Target:    target,
			Steps:     steps,
			Tier:      game.WinTier(steps),
			ElapsedMs: int(elapsed.Milliseconds()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// recordWin writes to the journal; failures are logged, not returned.
func (s *Server) recordWin(r *http.Request, res results.Result) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Insert(r.Context(), res); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("gameId", res.GameID).Msg("record result")
	}
}

// -----------------------------------------------------------------------------
// /ladder/{id}

type snapshotRes struct {
	GameID    string       `json:"gameId"`
	Start     string       `json:"start"`
	Target    string       `json:"target"`
	Previous  string       `json:"previous"`
	Steps     int          `json:"steps"`
	Won       bool         `json:"won"`
	JustWon   bool         `json:"justWon"`
	Message   string       `json:"message,omitempty"`
	History   []game.Entry `json:"history"`
	LastError string       `json:"lastError,omitempty"`
	Reason    game.Reason  `json:"reason,omitempty"`
}

// handleSnapshot returns the observers of the caller's session.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != tokenGameID(r) {
		writeError(w, http.StatusUnauthorized, "token_mismatch", "token does not grant this game")
		return
	}
	var out snapshotRes
	err := s.store.View(r.Context(), id, func(g *game.Session) error {
		out = snapshotRes{
			GameID:   g.ID(),
			Start:    g.Start(),
			Target:   g.Target(),
			Previous: g.Previous(),
			Steps:    g.Steps(),
			Won:      g.HasWon(),
			JustWon:  g.JustWon(),
			History:  g.History(),
		}
		if g.HasWon() {
			out.Message = game.WinMessage(g.Steps())
		}
		if rej := g.LastRejection(); rej != nil {
			out.LastError, out.Reason = rej.Error(), rej.Reason
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "no such game")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "view_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
