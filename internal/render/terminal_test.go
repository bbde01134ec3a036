package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminal(screen, cols, rows)
	if err := term.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(term.Release)
	return term, screen
}

func TestTerminalFillsCellsInsideRect(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 30)
	term.Configure(800, 600)
	term.Clear()

	center, size := CellRect(20, 15, 20)
	term.DrawRect(Red, center, size)

	filled := map[[2]int]bool{}
	for row := 0; row < 30; row++ {
		for col := 0; col < 80; col++ {
			r, _, _, _ := screen.GetContent(col, row)
			if r == '█' {
				filled[[2]int{col, row}] = true
			}
		}
	}
	want := map[[2]int]bool{{40, 14}: true, {41, 14}: true}
	if len(filled) != len(want) {
		t.Fatalf("filled %v", filled)
	}
	for k := range want {
		if !filled[k] {
			t.Fatalf("missing %v in %v", k, filled)
		}
	}

	_, _, style, _ := screen.GetContent(40, 14)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("fg %v", fg)
	}
}

func TestTerminalClipsToRegion(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 10)
	term.Configure(100, 100)
	term.Clear()

	// Rect straddling the right edge of the surface.
	center, size := CellRect(9, 0, 10)
	center[0] += 10
	term.DrawRect(Green, center, size)

	r, _, _, _ := screen.GetContent(9, 9)
	if r == '█' {
		t.Fatal("drew past the region")
	}
}

func TestTerminalRejectsEmptyRegion(t *testing.T) {
	term := NewTerminal(tcell.NewSimulationScreen("UTF-8"), 0, 10)
	if err := term.Init(); err == nil {
		t.Fatal("expected error")
	}
}
