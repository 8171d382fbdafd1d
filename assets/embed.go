// Package assets embeds the default word list and the SQL migrations.
package assets

import (
	"embed"
	"io"
	"io/fs"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// Words opens the embedded default word list (one word per line).
func Words() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}

// Migrations returns the embedded sql/ directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is embedded at build time; a miss is a build problem.
		panic(err)
	}
	return sub
}
