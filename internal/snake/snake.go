// Package snake implements the grid entity steered by the player and the
// input intent that feeds it.
package snake

import (
	"fmt"

	"christmas-snake/internal/core"
)

// Snake is a head position plus a bounded tail history on a toroidal grid.
//
// The tail is ordered oldest to newest: tail[0] is the tip and
// tail[tailLen-1] is the cell right behind the head. Its capacity is the
// number of grid cells, which is the most the snake can ever occupy.
type Snake struct {
	grid core.Grid

	pos     core.Point
	prevPos core.Point

	heading     core.Heading
	lastHeading core.Heading

	tail    []core.Point
	tailLen int
}

// New places a snake with an empty tail at start, facing heading.
// It panics if start lies outside grid or heading is invalid.
func New(grid core.Grid, start core.Point, heading core.Heading) *Snake {
	if !grid.Contains(start) {
		panic(fmt.Sprintf("snake: start %v outside %dx%d grid", start, grid.W, grid.H))
	}
	if !heading.Valid() {
		panic(fmt.Sprintf("snake: invalid heading %v", heading))
	}
	return &Snake{
		grid:        grid,
		pos:         start,
		prevPos:     start,
		heading:     heading,
		lastHeading: heading,
		tail:        make([]core.Point, grid.Cells()),
	}
}

// Position returns the head cell.
func (s *Snake) Position() core.Point { return s.pos }

// PreviousPosition returns the head cell before the last Move.
func (s *Snake) PreviousPosition() core.Point { return s.prevPos }

// Heading returns the heading the next Move will apply.
func (s *Snake) Heading() core.Heading { return s.heading }

// LastHeading returns the heading applied by the last Move.
func (s *Snake) LastHeading() core.Heading { return s.lastHeading }

// TailLen returns the number of live tail cells.
func (s *Snake) TailLen() int { return s.tailLen }

// Len returns the number of cells occupied, head included.
func (s *Snake) Len() int { return s.tailLen + 1 }

// Tail returns the live tail cells. The slice aliases internal storage and
// must not be modified.
func (s *Snake) Tail() []core.Point { return s.tail[:s.tailLen] }

// SetHeading requests a new heading. Reversing onto the cell the snake just
// left is not allowed; such requests are dropped and SetHeading reports false.
func (s *Snake) SetHeading(h core.Heading) bool {
	if !h.Valid() {
		panic(fmt.Sprintf("snake: invalid heading %v", h))
	}
	if h.IsOpposite(s.lastHeading) {
		return false
	}
	s.heading = h
	return true
}

// Move advances the head one cell and drags the tail after it.
func (s *Snake) Move() {
	s.prevPos = s.pos
	s.lastHeading = s.heading
	s.pos = s.grid.Wrap(s.pos.Add(s.heading.Delta()))

	if s.tailLen == 0 {
		return
	}
	// Ascending order: each slot reads its successor before that one is overwritten.
	for i := 0; i < s.tailLen-1; i++ {
		s.tail[i] = s.tail[i+1]
	}
	s.tail[s.tailLen-1] = s.prevPos
}

// Grow appends the previous head position to the tail. Growing a snake that
// already fills the grid is a programming error and panics.
func (s *Snake) Grow() {
	if s.tailLen >= len(s.tail) {
		panic(fmt.Sprintf("snake: tail already at grid capacity %d", len(s.tail)))
	}
	s.tail[s.tailLen] = s.prevPos
	s.tailLen++
}

// SelfIntersects reports whether the head overlaps a live tail cell.
func (s *Snake) SelfIntersects() bool {
	return s.tailContains(s.pos)
}

// Occupies reports whether p is the head or a live tail cell.
func (s *Snake) Occupies(p core.Point) bool {
	return p == s.pos || s.tailContains(p)
}

func (s *Snake) tailContains(p core.Point) bool {
	for _, c := range s.tail[:s.tailLen] {
		if c == p {
			return true
		}
	}
	return false
}
