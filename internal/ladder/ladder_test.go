package ladder

import (
	"reflect"
	"testing"
)

var fiveLetter = []string{
	"state", "stale", "stare", "slate", "least", "steal", "leash",
	"lease", "tease", "sleet", "eases", "aabbb", "ababx", "llama",
}

func TestIsValidTransformation(t *testing.T) {
	cases := []struct {
		candidate, previous string
		want                bool
	}{
		{"stare", "state", true},
		{"stale", "state", true},
		{"leash", "stale", true},
		{"slate", "state", true},
		{"state", "state", false},
		{"leash", "state", false},
		{"cat", "state", false},
		{"states", "state", false},
		// Anagram of a one-step neighbour: several positions differ, the
		// multisets differ by one letter.
		{"least", "state", true},
		{"steal", "state", true},
	}
	for _, c := range cases {
		if got := IsValidTransformation(c.candidate, c.previous); got != c.want {
			t.Errorf("IsValidTransformation(%q, %q) = %v, want %v", c.candidate, c.previous, got, c.want)
		}
	}
}

func TestIsValidTransformation_SameWordNeverValid(t *testing.T) {
	for _, w := range fiveLetter {
		if IsValidTransformation(w, w) {
			t.Errorf("IsValidTransformation(%q, %q) = true", w, w)
		}
	}
}

func TestIsValidTransformation_Symmetric(t *testing.T) {
	for _, a := range fiveLetter {
		for _, b := range fiveLetter {
			if IsValidTransformation(a, b) != IsValidTransformation(b, a) {
				t.Errorf("asymmetric for %q/%q", a, b)
			}
		}
	}
}

func TestIsValidTransformation_DuplicateLetters(t *testing.T) {
	// tease/eases overlap: e=2, a=1, s=1 -> 4.
	if !IsValidTransformation("tease", "eases") {
		t.Fatal("tease/eases should be one step apart")
	}
	// "sleet" vs "state": s=1, t=1, e=1 -> 3.
	if IsValidTransformation("sleet", "state") {
		t.Fatal("sleet/state are two steps apart")
	}
}

func TestRule_MultisetVersusSubstitution(t *testing.T) {
	cases := []struct {
		candidate, previous string
		multiset, subst     bool
	}{
		{"stare", "state", true, true},
		{"slate", "state", true, true},
		{"least", "state", true, false},
		{"steal", "state", true, false},
		{"state", "state", false, false},
		{"leash", "state", false, false},
	}
	for _, c := range cases {
		if got := RuleMultiset.Allows(c.candidate, c.previous); got != c.multiset {
			t.Errorf("multiset %q<-%q = %v, want %v", c.candidate, c.previous, got, c.multiset)
		}
		if got := RuleSubstitution.Allows(c.candidate, c.previous); got != c.subst {
			t.Errorf("substitution %q<-%q = %v, want %v", c.candidate, c.previous, got, c.subst)
		}
	}
}

func TestParseRule(t *testing.T) {
	for in, want := range map[string]Rule{"": RuleMultiset, "multiset": RuleMultiset, "substitution": RuleSubstitution} {
		got, err := ParseRule(in)
		if err != nil || got != want {
			t.Errorf("ParseRule(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseRule("anagram"); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestComputeFeedback(t *testing.T) {
	C, P, A := StatusCorrect, StatusPresent, StatusAbsent
	cases := []struct {
		guess, target string
		want          []Status
	}{
		{"leash", "leash", []Status{C, C, C, C, C}},
		{"stare", "leash", []Status{P, A, C, A, P}},
		{"stale", "leash", []Status{P, A, C, P, P}},
		{"state", "leash", []Status{P, A, C, A, P}},
		{"aabbb", "ababx", []Status{C, P, P, C, A}},
		{"eerie", "leash", []Status{A, C, A, A, A}},
		{"llama", "leash", []Status{C, A, C, A, A}},
		{"cat", "leash", []Status{A, A, A}},
	}
	for _, c := range cases {
		got := ComputeFeedback(c.guess, c.target)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ComputeFeedback(%q, %q) = %v, want %v", c.guess, c.target, got, c.want)
		}
	}
}

func TestComputeFeedback_NeverOverCountsLetters(t *testing.T) {
	pairs := [][2]string{
		{"aabbb", "ababx"},
		{"eerie", "leash"},
		{"sassy", "stash"},
		{"llama", "leash"},
		{"geese", "sheep"},
		{"tease", "eases"},
	}
	for _, p := range pairs {
		guess, target := []rune(p[0]), []rune(p[1])
		fb := ComputeFeedback(p[0], p[1])
		marked := map[rune]int{}
		for i, s := range fb {
			if s != StatusAbsent {
				marked[guess[i]]++
			}
		}
		have := letterCounts(target)
		for r, n := range marked {
			if n > have[r] {
				t.Errorf("%s vs %s: letter %q marked %d times, target has %d", p[0], p[1], r, n, have[r])
			}
		}
	}
}

func TestComputeFeedback_TargetAgainstItself(t *testing.T) {
	for _, w := range fiveLetter {
		if !AllCorrect(ComputeFeedback(w, w)) {
			t.Errorf("ComputeFeedback(%q, %q) not all correct", w, w)
		}
	}
}

func TestAllCorrect(t *testing.T) {
	if AllCorrect(nil) {
		t.Error("empty feedback is not a win")
	}
	if AllCorrect([]Status{StatusCorrect, StatusPresent}) {
		t.Error("present is not correct")
	}
}
