package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Jorgelet/bingo-analisis/cmd/wordbingo/shared"
	"github.com/Jorgelet/bingo-analisis/internal/dict"
	"github.com/Jorgelet/bingo-analisis/internal/game"
	"github.com/Jorgelet/bingo-analisis/internal/server"
)

// ServeCmd runs the WebSocket host service
type ServeCmd struct {
	Config string `kong:"default='wordbingo.hcl',help='Path to HCL configuration file'"`
	Addr   string `kong:"help='Listen address, overrides the config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	Quiet  bool   `kong:"help='Disable the live session feed on stdout'"`
}

func (c *ServeCmd) Run() error {
	config, err := server.LoadServerConfig(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := shared.SetupLoggerWithLevel(config.Server.LogLevel)
	if c.Debug {
		logger = shared.SetupLogger(true)
	}

	addr := config.GetServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	logger.Info("Loading word banks", "banks", len(config.Banks))
	dicts, err := dict.LoadAll(ctx, config.BankPaths())
	if err != nil {
		return fmt.Errorf("failed to load word banks: %w", err)
	}

	banks := make(game.Banks, len(dicts))
	for code, d := range dicts {
		lang, ok := game.ParseLanguage(code)
		if !ok {
			return fmt.Errorf("unknown language code %q", code)
		}
		logger.Info("Word bank loaded", "language", lang, "words", d.Len())
		banks[lang] = d
	}

	var monitor server.GameMonitor = server.NullGameMonitor{}
	if !c.Quiet {
		monitor = server.NewPrettyMonitor(os.Stdout)
	}

	sessions := server.NewSessionManager(banks, logger, nil, monitor, config.SessionIdleTimeout(), nil)
	srv := server.NewServer(addr, logger, sessions)

	logger.Info("Starting wordbingo server",
		"addr", addr,
		"languages", len(banks),
		"session_idle_timeout", config.SessionIdleTimeout())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Start()
	})
	group.Go(func() error {
		return sessions.Run(ctx)
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		return srv.Stop()
	})

	err = group.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
