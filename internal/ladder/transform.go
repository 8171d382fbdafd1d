package ladder

// letterCounts builds the letter multiset of w.
func letterCounts(w []rune) map[rune]int {
	m := make(map[rune]int, len(w))
	for _, r := range w {
		m[r]++
	}
	return m
}

// commonLetters returns the multiset overlap of a and b: for every letter
// present in both, the smaller of the two counts, summed.
func commonLetters(a, b []rune) int {
	ca, cb := letterCounts(a), letterCounts(b)
	n := 0
	for r, x := range ca {
		if y, ok := cb[r]; ok {
			n += min(x, y)
		}
	}
	return n
}

// IsValidTransformation reports whether candidate is one step away from
// previous: equal lengths and exactly one letter instance not shared.
//
// Positions are not compared, so an anagram of a one-step neighbour also
// passes ("state" → "least"). Callers that need positional steps use
// IsSingleSubstitution.
func IsValidTransformation(candidate, previous string) bool {
	c, p := []rune(candidate), []rune(previous)
	if len(c) != len(p) {
		return false
	}
	return len(c)-commonLetters(c, p) == 1
}

// IsSingleSubstitution reports whether candidate and previous have equal
// length and differ at exactly one position.
func IsSingleSubstitution(candidate, previous string) bool {
	c, p := []rune(candidate), []rune(previous)
	if len(c) != len(p) {
		return false
	}
	diff := 0
	for i := range c {
		if c[i] != p[i] {
			diff++
		}
	}
	return diff == 1
}
