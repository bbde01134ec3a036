package ui

import (
	"fmt"
	"image"

	"christmas-snake/internal/game"
)

const (
	glyphW      = 7
	glyphH      = 13
	lineHeight  = 16
	panelPad    = 8
	bannerTitle = "GAME OVER"
)

// textWidth returns the pixel width of s in the fixed 7x13 face.
func textWidth(s string) int { return len([]rune(s)) * glyphW }

// centered returns the baseline origin that centres a single line of text in r.
func centered(r image.Rectangle, s string) image.Point {
	x := r.Min.X + (r.Dx()-textWidth(s))/2
	y := r.Min.Y + (r.Dy()+glyphH)/2 - 3
	return image.Pt(x, y)
}

// panelRect returns the HUD panel rectangle anchored to the top-right corner
// of bounds, tall enough for n lines.
func panelRect(bounds image.Rectangle, width, n int) image.Rectangle {
	h := n*lineHeight + 2*panelPad
	width = min(width, bounds.Dx())
	h = min(h, bounds.Dy())
	return image.Rect(bounds.Max.X-width, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+h)
}

func scoreLine(st game.State) string {
	return fmt.Sprintf("SCORE %d", st.Score)
}

func bannerLines(st game.State) []string {
	if !st.GameOver {
		return nil
	}
	return []string{bannerTitle, fmt.Sprintf("final score %d", st.Score), "R restart  Q quit"}
}
