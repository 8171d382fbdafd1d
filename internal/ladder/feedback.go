// internal/ladder/feedback.go
//
// Per-letter feedback for a guess against the target word.
//
// Two passes:
//   Pass 1: mark exact position matches Correct.
//   Pass 2: for each remaining letter that occurs in the target, mark it
//           Present while the target still has unclaimed instances of it,
//           otherwise Absent.
//
// All bookkeeping lives in the call; nothing is shared between calls.

package ladder

// ComputeFeedback returns one Status per letter of guess.
// If guess and target differ in length the result is all Absent.
func ComputeFeedback(guess, target string) []Status {
	g, t := []rune(guess), []rune(target)
	out := make([]Status, len(g))
	for i := range out {
		out[i] = StatusAbsent
	}
	if len(g) != len(t) {
		return out
	}

	inTarget := letterCounts(t)
	seen := make(map[rune]int, len(g))    // occurrences in guess[0..i]
	claimed := make(map[rune]int, len(g)) // positions already marked Correct/Present

	// Pass 1: exact positions.
	for i := range g {
		if g[i] == t[i] {
			out[i] = StatusCorrect
			claimed[g[i]]++
		}
	}

	// Pass 2: letters elsewhere in the target.
	for i, r := range g {
		seen[r]++
		if out[i] == StatusCorrect {
			continue
		}
		total, ok := inTarget[r]
		if !ok {
			continue
		}
		if seen[r] <= total && claimed[r] < total {
			out[i] = StatusPresent
			claimed[r]++
		}
	}
	return out
}

// AllCorrect reports whether every status is StatusCorrect.
func AllCorrect(s []Status) bool {
	for _, x := range s {
		if x != StatusCorrect {
			return false
		}
	}
	return len(s) > 0
}
