// internal/game/types.go
//
// Core type definitions for a word-ladder session.
// Defines:
//   - Puzzle:    the fixed start/target pair and word length.
//   - Entry:     one accepted guess with its feedback.
//   - Reason:    why a guess was rejected.
//   - Rejection: typed rejection returned to callers (implements error).
//   - Result:    outcome of a single submission.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/letterleap/internal/ladder"
)

// Default puzzle.
const (
	DefaultStart  = "state"
	DefaultTarget = "leash"
	DefaultLength = 5
)

// Puzzle is the fixed start/target pair of a ladder.
type Puzzle struct {
	Start  string `yaml:"start" json:"start"`
	Target string `yaml:"target" json:"target"`
	Length int    `yaml:"length" json:"length"`
}

// DefaultPuzzle is state → leash with five-letter words.
func DefaultPuzzle() Puzzle {
	return Puzzle{Start: DefaultStart, Target: DefaultTarget, Length: DefaultLength}
}

// Entry is an accepted guess together with its feedback against the target.
type Entry struct {
	Word     string          `json:"word"`
	Feedback []ladder.Status `json:"feedback"`
}

// Reason identifies which gate rejected a guess.
type Reason string

const (
	ReasonInvalidLength         Reason = "invalid_length"
	ReasonNotInDictionary       Reason = "not_in_dictionary"
	ReasonInvalidTransformation Reason = "invalid_transformation"
)

// Sentinel errors; a *Rejection unwraps to one of these.
var (
	ErrInvalidLength         = errors.New("invalid length")
	ErrNotInDictionary       = errors.New("not in dictionary")
	ErrInvalidTransformation = errors.New("invalid transformation")
)

// Rejection is a recoverable, user-facing refusal of a guess.
type Rejection struct {
	Reason Reason
	Length int // puzzle word length, used in the message
}

// Error returns the message shown to the player.
func (r *Rejection) Error() string {
	switch r.Reason {
	case ReasonInvalidLength:
		return fmt.Sprintf("Please enter a %d-letter word.", r.Length)
	case ReasonNotInDictionary:
		return "Not a valid word."
	case ReasonInvalidTransformation:
		return "Invalid transformation."
	}
	return string(r.Reason)
}

func (r *Rejection) Unwrap() error {
	switch r.Reason {
	case ReasonInvalidLength:
		return ErrInvalidLength
	case ReasonNotInDictionary:
		return ErrNotInDictionary
	case ReasonInvalidTransformation:
		return ErrInvalidTransformation
	}
	return nil
}

// Result is the outcome of SubmitGuess. Exactly one of Rejection (non-nil)
// or the accepted fields is meaningful.
type Result struct {
	Rejection *Rejection
	Word      string          // accepted word, normalized
	Feedback  []ladder.Status // per-letter feedback against the target
	Won       bool            // session has reached the target
	JustWon   bool            // this submission reached the target
}

// Accepted reports whether the guess passed every gate.
func (r Result) Accepted() bool { return r.Rejection == nil }
