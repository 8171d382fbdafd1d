// internal/dictionary/load.go
//
// Loading behaviour:
//   1. Source.File set → read that file.
//   2. Source.URL set  → GET it; any non-200 status is a load error.
//   3. Neither set     → the embedded default list (assets/words.txt).
//
// LoadAsync never fails: it hands back a Lazy dictionary that rejects every
// word until the load finishes, and stays empty if the load failed.

package dictionary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterleap/assets"
)

// Source describes where the word list comes from.
type Source struct {
	File string
	URL  string
}

func (s Source) String() string {
	switch {
	case s.File != "":
		return "file:" + s.File
	case s.URL != "":
		return s.URL
	}
	return "embedded"
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Load reads and parses the word list described by src.
func Load(ctx context.Context, src Source, length int) (*Dictionary, error) {
	rc, err := open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", src, err)
	}
	defer rc.Close()
	d, err := Parse(rc, length)
	if err != nil {
		return nil, fmt.Errorf("dictionary: parse %s: %w", src, err)
	}
	return d, nil
}

func open(ctx context.Context, src Source) (io.ReadCloser, error) {
	switch {
	case src.File != "":
		return os.Open(src.File)
	case src.URL != "":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	default:
		return assets.Words()
	}
}

// Lazy is a Dictionary that is filled in once by a background load.
type Lazy struct {
	length int
	cur    atomic.Pointer[Dictionary]
	done   chan struct{}
}

// LoadAsync starts loading src in the background and returns immediately.
func LoadAsync(ctx context.Context, src Source, length int) *Lazy {
	l := &Lazy{length: length, done: make(chan struct{})}
	go func() {
		defer close(l.done)
		d, err := Load(ctx, src, length)
		if err != nil {
			log.Warn().Err(err).Str("source", src.String()).Msg("word list unavailable; every guess will be rejected")
			d = Empty(length)
		} else {
			log.Info().Str("source", src.String()).Int("words", d.Len()).Msg("word list loaded")
		}
		l.cur.Store(d)
	}()
	return l
}

// Contains reports false for every word until the load has finished.
func (l *Lazy) Contains(w string) bool {
	d := l.cur.Load()
	return d != nil && d.Contains(w)
}

// Len is 0 until the load has finished.
func (l *Lazy) Len() int {
	if d := l.cur.Load(); d != nil {
		return d.Len()
	}
	return 0
}

// Ready reports whether the background load has finished.
func (l *Lazy) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load has finished or ctx is done.
func (l *Lazy) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
