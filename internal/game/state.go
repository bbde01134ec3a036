package game

import (
	"christmas-snake/internal/core"
	"christmas-snake/internal/snake"
)

// State is everything a frame needs to draw the board.
type State struct {
	Snake    *snake.Snake
	Pickup   core.Point
	GameOver bool
	Score    int
	Ticks    int
	Frames   int
}

// TickResult reports what a single Step did.
type TickResult struct {
	Ticked   bool
	Ate      bool
	GameOver bool
}
