// Package tty runs the game in a terminal through tcell.
package tty

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
	"christmas-snake/internal/render"
)

// maxCatchUp bounds how many frames run back to back after a stall.
const maxCatchUp = 5

// Options tune a host run.
type Options struct {
	// MaxFrames stops the run after that many frames. Zero runs until quit.
	MaxFrames int
}

// Host owns the terminal for the lifetime of a session.
type Host struct {
	cfg    game.Config
	audio  game.AudioPlayer
	screen tcell.Screen
	term   *render.Terminal
	loop   *game.Loop
	frames int
}

// NewHost creates the game and takes over screen. Each board cell is two
// columns wide so the board keeps its aspect ratio.
func NewHost(cfg game.Config, screen tcell.Screen, audio game.AudioPlayer) (*Host, error) {
	if audio == nil {
		audio = game.NopAudio{}
	}
	loop, err := game.NewLoop(cfg, audio)
	if err != nil {
		return nil, err
	}
	term := render.NewTerminal(screen, cfg.GridWidth*2, cfg.GridHeight)
	if err := term.Init(); err != nil {
		return nil, err
	}
	size := cfg.Size()
	term.Configure(size.W, size.H)
	return &Host{cfg: cfg, audio: audio, screen: screen, term: term, loop: loop}, nil
}

// Loop returns the running game.
func (h *Host) Loop() *game.Loop { return h.loop }

// Frames returns how many frames the host has run.
func (h *Host) Frames() int { return h.frames }

// Run drives the game until the player quits, ctx is cancelled or
// opts.MaxFrames is reached. Quitting returns nil; cancellation returns
// ctx.Err().
func (h *Host) Run(ctx context.Context, opts Options) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	step := core.NewFixedStep(h.cfg.FPS)
	ticker := time.NewTicker(step.Step())
	defer ticker.Stop()

	h.loop.Start()
	h.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			quit, err := h.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				core.Logger().Info("quit", "frames", h.frames, "score", h.loop.State().Score)
				return nil
			}
		case <-ticker.C:
			for i := 0; i < maxCatchUp && step.ShouldStep(); i++ {
				h.loop.Step()
				h.frames++
			}
			h.draw()
			if opts.MaxFrames > 0 && h.frames >= opts.MaxFrames {
				return nil
			}
		}
	}
}

// handle applies one terminal event and reports whether the player quit.
func (h *Host) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return true, nil
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') && h.loop.GameOver():
			return false, h.restart()
		}
		if heading, ok := headingFor(ev); ok {
			h.loop.Intent().Set(heading)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false, nil
}

func (h *Host) restart() error {
	loop, err := game.NewLoop(h.cfg, h.audio)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	h.loop = loop
	core.Logger().Info("round restarted", "seed", loop.Config().Seed)
	return nil
}

// headingFor maps arrow keys and WASD to headings.
func headingFor(ev *tcell.EventKey) (core.Heading, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.HeadingUp, true
	case tcell.KeyRight:
		return core.HeadingRight, true
	case tcell.KeyDown:
		return core.HeadingDown, true
	case tcell.KeyLeft:
		return core.HeadingLeft, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.HeadingUp, true
		case 'd', 'D':
			return core.HeadingRight, true
		case 's', 'S':
			return core.HeadingDown, true
		case 'a', 'A':
			return core.HeadingLeft, true
		}
	}
	return 0, false
}

func (h *Host) draw() {
	h.loop.Draw(h.term)
	_, rows := h.term.Region()
	st := h.loop.State()
	status := fmt.Sprintf("SCORE %d", st.Score)
	if st.GameOver {
		status += "  GAME OVER  r restart  q quit"
	}
	h.drawText(0, rows, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	h.term.Show()
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Close gives the terminal back to the shell.
func (h *Host) Close() {
	h.term.Release()
}

// Run plays one session on screen and restores the terminal on return.
func Run(ctx context.Context, cfg game.Config, screen tcell.Screen, audio game.AudioPlayer, opts Options) error {
	h, err := NewHost(cfg, screen, audio)
	if err != nil {
		return err
	}
	defer h.Close()
	return h.Run(ctx, opts)
}
