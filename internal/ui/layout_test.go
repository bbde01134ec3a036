package ui

import (
	"image"
	"slices"
	"testing"

	"christmas-snake/internal/game"
)

func TestCenteredText(t *testing.T) {
	r := image.Rect(0, 0, 800, 600)
	at := centered(r, bannerTitle)
	if want := (800 - 9*glyphW) / 2; at.X != want {
		t.Fatalf("x=%d want %d", at.X, want)
	}
	if at.Y <= 300-glyphH || at.Y >= 300+glyphH {
		t.Fatalf("baseline %d not near the middle", at.Y)
	}
}

func TestPanelRectAnchorsTopRight(t *testing.T) {
	r := panelRect(image.Rect(0, 0, 800, 600), 220, 4)
	want := image.Rect(580, 0, 800, 4*lineHeight+2*panelPad)
	if r != want {
		t.Fatalf("got %v want %v", r, want)
	}
	if small := panelRect(image.Rect(0, 0, 100, 20), 220, 10); small != image.Rect(0, 0, 100, 20) {
		t.Fatalf("clamped %v", small)
	}
}

func TestBannerOnlyAfterGameOver(t *testing.T) {
	if lines := bannerLines(game.State{Score: 2}); lines != nil {
		t.Fatalf("banner while running: %v", lines)
	}
	lines := bannerLines(game.State{Score: 2, GameOver: true})
	if len(lines) == 0 || lines[0] != bannerTitle {
		t.Fatalf("lines %v", lines)
	}
	if !slices.Contains(lines, "final score 2") {
		t.Fatalf("lines %v", lines)
	}
	if got := scoreLine(game.State{Score: 12}); got != "SCORE 12" {
		t.Fatalf("score %q", got)
	}
}
