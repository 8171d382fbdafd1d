package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/letterleap/assets"
	"github.com/robalobadob/letterleap/internal/config"
	"github.com/robalobadob/letterleap/internal/dictionary"
	"github.com/robalobadob/letterleap/internal/httpserver"
	"github.com/robalobadob/letterleap/internal/results"
	"github.com/robalobadob/letterleap/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Guesses are rejected as not-in-dictionary until this finishes.
	words := dictionary.LoadAsync(ctx, dictionary.Source{File: cfg.WordsFile, URL: cfg.WordsURL}, cfg.Puzzle.Length)

	// The journal is optional: without it the game still works, /stats does not.
	var journal httpserver.Journal
	if db, err := results.OpenDB(cfg.DBPath); err != nil {
		log.Warn().Err(err).Str("db", cfg.DBPath).Msg("results journal disabled")
	} else if err := results.Migrate(db, assets.Migrations()); err != nil {
		log.Warn().Err(err).Str("db", cfg.DBPath).Msg("results journal disabled")
		_ = db.Close()
	} else {
		defer db.Close()
		journal = results.NewStore(db)
	}

	sessions := store.NewMemoryStore(cfg.SessionTTL)
	go sessions.RunSweeper(ctx, time.Minute)

	srv := httpserver.New(httpserver.Deps{
		Store:         sessions,
		Words:         words,
		Journal:       journal,
		Puzzle:        cfg.Puzzle,
		Rule:          cfg.Rule,
		Secret:        []byte(cfg.JWTSecret),
		TokenTTL:      cfg.SessionTTL,
		ClientOrigin:  cfg.ClientOrigin,
		SecureCookies: cfg.CookieSecure,
	})

	log.Info().
		Str("port", cfg.Port).
		Str("start", cfg.Puzzle.Start).
		Str("target", cfg.Puzzle.Target).
		Str("rule", string(cfg.Rule)).
		Msg("starting letterleap")
	if err := srv.Start(ctx, cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("shut down")
}
