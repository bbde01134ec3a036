//go:build ebiten

package app

import (
	"fmt"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
	"christmas-snake/internal/render"
	"christmas-snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

var headingKeys = []struct {
	key     ebiten.Key
	heading core.Heading
}{
	{ebiten.KeyArrowUp, core.HeadingUp},
	{ebiten.KeyW, core.HeadingUp},
	{ebiten.KeyArrowRight, core.HeadingRight},
	{ebiten.KeyD, core.HeadingRight},
	{ebiten.KeyArrowDown, core.HeadingDown},
	{ebiten.KeyS, core.HeadingDown},
	{ebiten.KeyArrowLeft, core.HeadingLeft},
	{ebiten.KeyA, core.HeadingLeft},
}

// Game adapts a game.Loop to the ebiten.Game interface.
type Game struct {
	cfg     game.Config
	audio   game.AudioPlayer
	loop    *game.Loop
	backend *render.Backend
	overlay *ui.Overlay
	hud     *ui.HUD
	size    core.Size
}

// New constructs a Game for cfg and starts the background music.
func New(cfg game.Config, audio game.AudioPlayer) (*Game, error) {
	if audio == nil {
		audio = game.NopAudio{}
	}
	loop, err := game.NewLoop(cfg, audio)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		audio:   audio,
		loop:    loop,
		backend: render.NewBackend(),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(loop, hudWidth),
		size:    cfg.Size(),
	}
	g.backend.Configure(g.size.W, g.size.H)
	loop.Start()
	return g, nil
}

// Restart begins a new round with the same configuration. A zero seed draws
// a fresh one.
func (g *Game) Restart() error {
	loop, err := game.NewLoop(g.cfg, g.audio)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	g.loop = loop
	g.hud.SetSource(loop)
	core.Logger().Info("round restarted", "seed", loop.Config().Seed)
	return nil
}

// Update handles per-frame input and advances the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.backend.Init(); err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	for _, hk := range headingKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			g.loop.Intent().Set(hk.heading)
		}
	}
	if g.loop.GameOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Restart(); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.hud.Update()
	g.loop.Step()
	return nil
}

// Draw renders the board, then the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.backend.State() != render.StateReady {
		return
	}
	g.backend.Begin(screen)
	g.loop.Draw(g.backend)
	g.overlay.Draw(screen, g.loop.State())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W, g.size.H
}

// Close releases GPU resources.
func (g *Game) Close() {
	g.backend.Release()
}
