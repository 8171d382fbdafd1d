// internal/game/engine.go
//
// Core game engine for a single word-ladder session.
// Responsibilities:
//   - Hold the start/target pair, the previous word and the accepted history.
//   - Validate guesses through three gates: length, dictionary, transformation.
//   - Score accepted guesses against the target.
//   - Track the win, flagging the one submission that achieved it.
//
// A Session is not safe for concurrent use; callers serialize submissions.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/robalobadob/letterleap/internal/ladder"
)

// Dictionary is the membership check a Session needs.
type Dictionary interface {
	Contains(word string) bool
}

// Session is the state of one ladder game.
type Session struct {
	id        string
	start     string
	target    string
	length    int
	rule      ladder.Rule
	dict      Dictionary
	startedAt time.Time

	previous string
	history  []Entry
	steps    int
	won      bool
	justWon  bool
	last     *Rejection
}

// Option configures a Session.
type Option func(*Session)

// WithRule selects the transformation rule. The default is ladder.RuleMultiset.
func WithRule(r ladder.Rule) Option {
	return func(s *Session) { s.rule = r }
}

// WithID overrides the random session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New starts a session for p. It panics if the start or target word does not
// have p.Length letters.
func New(p Puzzle, dict Dictionary, opts ...Option) *Session {
	s := &Session{
		id:        randomID(),
		start:     ladder.Normalize(p.Start),
		target:    ladder.Normalize(p.Target),
		length:    p.Length,
		rule:      ladder.RuleMultiset,
		dict:      dict,
		startedAt: time.Now(),
	}
	if ladder.Length(s.start) != s.length || ladder.Length(s.target) != s.length {
		panic(fmt.Sprintf("game: puzzle %q → %q does not match word length %d", p.Start, p.Target, p.Length))
	}
	for _, o := range opts {
		o(s)
	}
	s.previous = s.start
	return s
}

// SubmitGuess runs raw through the gates and, if it passes, applies it.
// A rejected guess leaves the session unchanged apart from LastRejection.
func (s *Session) SubmitGuess(raw string) Result {
	s.justWon = false
	guess := ladder.Normalize(raw)

	if ladder.Length(guess) != s.length {
		return s.reject(ReasonInvalidLength)
	}
	if !s.dict.Contains(guess) {
		return s.reject(ReasonNotInDictionary)
	}
	if !s.rule.Allows(guess, s.previous) {
		return s.reject(ReasonInvalidTransformation)
	}

	s.last = nil
	s.steps++
	s.previous = guess
	if guess == s.target && !s.won {
		s.won, s.justWon = true, true
	}

	fb := ladder.ComputeFeedback(guess, s.target)
	s.history = append(s.history, Entry{Word: guess, Feedback: fb})
	return Result{Word: guess, Feedback: fb, Won: s.won, JustWon: s.justWon}
}

func (s *Session) reject(r Reason) Result {
	s.last = &Rejection{Reason: r, Length: s.length}
	return Result{Rejection: s.last, Won: s.won}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Start returns the starting word.
func (s *Session) Start() string { return s.start }

// Target returns the target word.
func (s *Session) Target() string { return s.target }

// Length returns the puzzle word length.
func (s *Session) Length() int { return s.length }

// Rule returns the transformation rule in use.
func (s *Session) Rule() ladder.Rule { return s.rule }

// Previous returns the word the next guess is checked against.
func (s *Session) Previous() string { return s.previous }

// Steps returns the number of accepted guesses.
func (s *Session) Steps() int { return s.steps }

// HasWon reports whether the target has been reached.
func (s *Session) HasWon() bool { return s.won }

// JustWon reports whether the most recent submission reached the target.
func (s *Session) JustWon() bool { return s.justWon }

// LastRejection returns the rejection of the most recent submission, or nil
// if it was accepted (or nothing was submitted yet).
func (s *Session) LastRejection() *Rejection { return s.last }

// StartedAt is when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// History returns a copy of the accepted guesses in submission order.
func (s *Session) History() []Entry {
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
