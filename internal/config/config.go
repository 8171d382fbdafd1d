// internal/config/config.go
//
// Server configuration.
//
// Sources, in order:
//   1. `.env` in the working directory (optional, godotenv).
//   2. Process environment, parsed into Config (caarlos0/env).
//   3. PUZZLE_FILE, if set: YAML overriding the start/target pair.
//
// Environment variables:
//   PORT, LOG_LEVEL, WORDS_FILE, WORDS_URL, DB_PATH, JWT_SECRET,
//   SESSION_TTL, CLIENT_ORIGIN, COOKIE_SECURE, LADDER_RULE, PUZZLE_FILE

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/letterleap/internal/game"
	"github.com/robalobadob/letterleap/internal/ladder"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Port         string        `env:"PORT" envDefault:"5175"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	WordsFile    string        `env:"WORDS_FILE"`
	WordsURL     string        `env:"WORDS_URL"`
	DBPath       string        `env:"DB_PATH" envDefault:"./data/letterleap.db"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	LadderRule   string        `env:"LADDER_RULE" envDefault:"multiset"`
	PuzzleFile   string        `env:"PUZZLE_FILE"`

	Puzzle game.Puzzle `env:"-"`
	Rule   ladder.Rule `env:"-"`
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the process environment without touching .env.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	rule, err := ladder.ParseRule(cfg.LadderRule)
	if err != nil {
		return nil, err
	}
	cfg.Rule = rule

	cfg.Puzzle = game.DefaultPuzzle()
	if cfg.PuzzleFile != "" {
		p, err := LoadPuzzleFile(cfg.PuzzleFile)
		if err != nil {
			return nil, err
		}
		cfg.Puzzle = p
	}
	return cfg, nil
}

// LoadPuzzleFile reads a YAML puzzle definition:
//
//	start: state
//	target: leash
//	length: 5
//
// Missing length is taken from the start word.
func LoadPuzzleFile(path string) (game.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Puzzle{}, fmt.Errorf("read puzzle file: %w", err)
	}
	var p game.Puzzle
	if err := yaml.Unmarshal(data, &p); err != nil {
		return game.Puzzle{}, fmt.Errorf("parse puzzle file %s: %w", path, err)
	}
	p.Start, p.Target = ladder.Normalize(p.Start), ladder.Normalize(p.Target)
	if p.Length <= 0 {
		p.Length = ladder.Length(p.Start)
	}
	if err := validatePuzzle(p); err != nil {
		return game.Puzzle{}, fmt.Errorf("puzzle file %s: %w", path, err)
	}
	return p, nil
}

func validatePuzzle(p game.Puzzle) error {
	switch {
	case p.Start == "" || p.Target == "":
		return errors.New("start and target are required")
	case ladder.Length(p.Start) != p.Length || ladder.Length(p.Target) != p.Length:
		return fmt.Errorf("start %q and target %q must both have %d letters", p.Start, p.Target, p.Length)
	case p.Start == p.Target:
		return errors.New("start and target must differ")
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }
