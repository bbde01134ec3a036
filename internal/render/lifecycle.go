package render

import (
	"errors"
	"fmt"
)

// ErrNotReady is the panic value cause when a backend is used outside its Ready state.
var ErrNotReady = errors.New("render: backend not ready")

// State is a backend lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateReady
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateReleased:
		return "released"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// lifecycle tracks Uninitialized -> Ready -> Released. There is no way back.
type lifecycle struct {
	state State
}

// State reports the backend lifecycle state.
func (l *lifecycle) State() State { return l.state }

func (l *lifecycle) markReady() { l.state = StateReady }

func (l *lifecycle) markReleased() { l.state = StateReleased }

func (l *lifecycle) mustBeReady(op string) {
	if l.state != StateReady {
		panic(fmt.Errorf("%w: %s called while %s", ErrNotReady, op, l.state))
	}
}
