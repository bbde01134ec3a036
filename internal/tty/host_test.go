package tty

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
)

func testConfig() game.Config {
	cfg := game.NewConfig()
	cfg.Seed = 3
	cfg.FPS = 200
	cfg.TicksPerSecond = 100
	cfg.GridWidth, cfg.GridHeight = 10, 8
	cfg.StartX, cfg.StartY = 5, 4
	return *cfg
}

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	h, err := NewHost(testConfig(), screen, nil)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(h.Close)
	return h, screen
}

func TestHeadingFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want core.Heading
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.HeadingUp, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.HeadingLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.HeadingRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), core.HeadingDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tc := range cases {
		got, ok := headingFor(tc.ev)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%v: got %v,%v want %v,%v", tc.ev.Name(), got, ok, tc.want, tc.ok)
		}
	}
}

func TestHandleSetsIntentAndQuits(t *testing.T) {
	h, _ := newTestHost(t)
	quit, err := h.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if quit || err != nil {
		t.Fatalf("quit=%v err=%v", quit, err)
	}
	if got, ok := h.Loop().Intent().Heading(); !ok || got != core.HeadingRight {
		t.Fatalf("intent %v %v", got, ok)
	}
	if quit, _ := h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !quit {
		t.Fatal("q did not quit")
	}
	if quit, _ := h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Fatal("esc did not quit")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	h, _ := newTestHost(t)
	before := h.Loop()
	if _, err := h.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if h.Loop() != before {
		t.Fatal("restarted a running game")
	}
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	h, screen := newTestHost(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Run(ctx, Options{MaxFrames: 10}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.Frames() < 10 {
		t.Fatalf("frames %d", h.Frames())
	}

	// Head cell drawn two columns wide, status line below the board.
	found := false
	for row := 0; row < 8; row++ {
		for col := 0; col < 20; col++ {
			if r, _, _, _ := screen.GetContent(col, row); r == '█' {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("board not drawn")
	}
	if r, _, _, _ := screen.GetContent(0, 8); r != 'S' {
		t.Fatalf("status line starts with %q", r)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	h, screen := newTestHost(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Run(ctx, Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunHonoursCancel(t *testing.T) {
	h, _ := newTestHost(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.Run(ctx, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: %v", err)
	}
}
