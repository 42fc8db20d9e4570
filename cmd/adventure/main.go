// Package main provides the adventure binary: a single-player text adventure
// played on the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/textquest/internal/audio"
	"github.com/cory-johannsen/textquest/internal/config"
	"github.com/cory-johannsen/textquest/internal/frontend/console"
	"github.com/cory-johannsen/textquest/internal/game/command"
	"github.com/cory-johannsen/textquest/internal/game/content"
	"github.com/cory-johannsen/textquest/internal/game/dice"
	"github.com/cory-johannsen/textquest/internal/game/session"
	"github.com/cory-johannsen/textquest/internal/observability"
	"github.com/cory-johannsen/textquest/internal/scripting"
	"github.com/cory-johannsen/textquest/internal/server"
	"github.com/cory-johannsen/textquest/internal/storage/savestore"
)

func main() {
	os.Exit(run())
}

func run() int {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and TEXTQUEST_* environment")
	contentDir := flag.String("content", "", "override game.content_dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("loading config: %v", err)
		return 2
	}
	if *contentDir != "" {
		cfg.Game.ContentDir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Printf("initializing logger: %v", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	display := console.NewDisplay(os.Stdout, cfg.Console.Width, cfg.Console.Color)

	player, err := audio.NewController(logger, cfg.Game.InitialVolume)
	if err != nil {
		logger.Error("creating audio controller", zap.Error(err))
		return 2
	}

	store, err := savestore.Open(cfg.Saves.Path)
	if err != nil {
		logger.Error("opening save store", zap.String("path", cfg.Saves.Path), zap.Error(err))
		return 2
	}
	defer store.Close()
	logger.Info("save store opened", zap.String("path", store.Path()))

	scripts := scripting.NewManager(logger)
	defer scripts.Close()

	dir := cfg.Game.ContentDir
	factory := func() (*content.Bundle, error) {
		loadStart := time.Now()
		b, err := content.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		logger.Info("content loaded",
			zap.String("dir", dir),
			zap.Int("rooms", b.World.RoomCount()),
			zap.Duration("elapsed", time.Since(loadStart)),
		)
		return b, nil
	}

	registry := command.DefaultRegistry()
	sess, err := session.New(session.Deps{
		Options: session.Options{
			MaxWeight:     cfg.Game.MaxWeight,
			PlayerHealth:  cfg.Game.PlayerHealth,
			BareHands:     dice.Range{Min: cfg.Game.BareHandsMin, Max: cfg.Game.BareHandsMax},
			LineDelay:     cfg.Game.LineDelay,
			FarewellDelay: cfg.Game.FarewellDelay,
			DefaultSlot:   cfg.Saves.DefaultSlot,
		},
		Factory:  factory,
		Display:  display,
		Audio:    player,
		Roller:   dice.NewLoggedRoller(dice.NewCryptoSource(), logger),
		Registry: registry,
		Logger:   logger,
		Scripts:  scripts,
		Store:    store,
	})
	if err != nil {
		display.Narrate(fmt.Sprintf("The adventure could not be loaded: %v", err))
		logger.Error("loading game", zap.String("dir", dir), zap.Error(err))
		return 1
	}

	queue := command.NewQueue()
	parser := command.NewParser(registry, queue)
	reader := console.NewReader(os.Stdin, queue, display, logger)

	ctx := context.Background()
	lc := server.NewLifecycle(logger)
	lc.Add("session", server.ContextService(ctx, func(ctx context.Context) error {
		return sess.Run(ctx, parser)
	}))
	lc.Add("console", server.ContextService(ctx, reader.Run))

	logger.Info("adventure started", zap.Duration("startup", time.Since(start)))
	err = lc.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		display.Narrate(fmt.Sprintf("The adventure ended abnormally: %v", err))
		logger.Error("adventure failed", zap.Error(err))
		return 1
	}
	return 0
}
