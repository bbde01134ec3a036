package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"christmas-snake/internal/audio"
	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
	"christmas-snake/internal/tty"
)

func main() {
	cfg := game.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	if err := run(cfg, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *game.Config, logFile string) error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	core.SetLogger(logger)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var player game.AudioPlayer = game.NopAudio{}
	if !cfg.Mute {
		p := audio.NewBeepPlayer()
		if err := p.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer p.Close()
			player = p
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tty.Run(ctx, *cfg, screen, player, tty.Options{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
