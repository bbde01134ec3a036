//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"christmas-snake/internal/app"
	"christmas-snake/internal/audio"
	"christmas-snake/internal/core"
	"christmas-snake/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	core.SetLogger(logger)

	var player game.AudioPlayer = game.NopAudio{}
	if !cfg.Mute {
		p, err := audio.NewEbitenPlayer()
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer p.Close()
			player = p
		}
	}

	g, err := app.New(*cfg, player)
	if err != nil {
		logger.Error("start game", "err", err)
		os.Exit(1)
	}
	defer g.Close()

	size := cfg.Size()
	ebiten.SetWindowTitle("christmas-snake")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(size.W, size.H)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
