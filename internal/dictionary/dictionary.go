// internal/dictionary/dictionary.go
//
// Word list management for the ladder engine.
//
// Responsibilities:
//   - Parse a plain-text word list (one word per line, any length, any case).
//   - Keep only words of the puzzle length, lowercased.
//   - Answer membership queries; immutable once built.
//
// Constraints:
//   • Blank lines and lines starting with '#' are skipped.
//   • Trailing empty lines and mixed case are tolerated.

package dictionary

import (
	"bufio"
	"io"
	"strings"

	"github.com/robalobadob/letterleap/internal/ladder"
)

// Dictionary is a read-only set of words of a single length.
type Dictionary struct {
	length int
	set    map[string]struct{}
}

// New builds a Dictionary from list, keeping only words of the given length.
func New(list []string, length int) *Dictionary {
	d := &Dictionary{length: length, set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		d.add(w)
	}
	return d
}

// Empty returns a Dictionary that contains nothing.
func Empty(length int) *Dictionary {
	return &Dictionary{length: length, set: map[string]struct{}{}}
}

// Parse reads one word per line from r.
func Parse(r io.Reader, length int) (*Dictionary, error) {
	d := Empty(length)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		d.add(s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dictionary) add(w string) {
	w = ladder.Normalize(w)
	if ladder.Length(w) == d.length {
		d.set[w] = struct{}{}
	}
}

// Contains reports whether w is in the dictionary. w is case-normalized first.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[ladder.Normalize(w)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.set) }

// WordLength is the length every word in the dictionary has.
func (d *Dictionary) WordLength() int { return d.length }
