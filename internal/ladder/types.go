// internal/ladder/types.go
//
// Core type definitions for the ladder rules.
// Defines:
//   - Status: per-letter feedback of a guess against the target (correct/present/absent).
//   - Rule:   which one-step transformation check a puzzle uses.

package ladder

import "fmt"

// Status represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at the same position.
//   - "present": letter is in the target at another position.
//   - "absent":  letter is not in the target, or all its instances are used up.
type Status string

const (
	StatusCorrect Status = "correct"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// Rule selects how a candidate is judged against the previous word.
type Rule string

const (
	// RuleMultiset accepts a step when exactly one letter instance differs
	// between the two letter multisets. Positions are ignored.
	RuleMultiset Rule = "multiset"
	// RuleSubstitution accepts a step only when exactly one position differs.
	RuleSubstitution Rule = "substitution"
)

// ParseRule maps a config string to a Rule. Empty means RuleMultiset.
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case "", RuleMultiset:
		return RuleMultiset, nil
	case RuleSubstitution:
		return RuleSubstitution, nil
	}
	return "", fmt.Errorf("ladder: unknown rule %q", s)
}

// Allows reports whether candidate is a legal next step from previous under r.
func (r Rule) Allows(candidate, previous string) bool {
	if r == RuleSubstitution {
		return IsSingleSubstitution(candidate, previous)
	}
	return IsValidTransformation(candidate, previous)
}
