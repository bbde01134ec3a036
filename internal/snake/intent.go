package snake

import (
	"fmt"
	"sync/atomic"

	"christmas-snake/internal/core"
)

// Intent holds the most recently requested heading. Later requests overwrite
// earlier ones until the scheduler reads it. It is safe to Set from an input
// goroutine while the game loop reads it.
type Intent struct {
	v atomic.Uint32
}

// Set records h as the latest requested heading.
func (i *Intent) Set(h core.Heading) {
	if !h.Valid() {
		panic(fmt.Sprintf("snake: invalid intent heading %v", h))
	}
	i.v.Store(uint32(h))
}

// Heading returns the latest requested heading, or false if none was set.
func (i *Intent) Heading() (core.Heading, bool) {
	h := core.Heading(i.v.Load())
	return h, h.Valid()
}
