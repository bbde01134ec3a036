package game

import (
	"fmt"
	"strconv"
	"time"

	"christmas-snake/internal/core"
	"christmas-snake/internal/render"
	"christmas-snake/internal/snake"
)

// maxPickupSamples bounds rejection sampling before falling back to a scan.
const maxPickupSamples = 64

// Loop owns the game state and advances it one display frame at a time.
type Loop struct {
	cfg    Config
	grid   core.Grid
	acc    *core.FrameAccumulator
	rng    *core.RNG
	audio  AudioPlayer
	intent snake.Intent
	state  State
}

// NewLoop validates cfg and places the snake and the first pickup.
func NewLoop(cfg Config, audio AudioPlayer) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if audio == nil {
		audio = NopAudio{}
	}
	grid := cfg.Grid()
	l := &Loop{
		cfg:   cfg,
		grid:  grid,
		acc:   core.NewFrameAccumulator(cfg.FPS, cfg.TicksPerSecond),
		rng:   core.NewRNG(cfg.Seed),
		audio: audio,
	}
	l.state.Snake = snake.New(grid, cfg.Start(), cfg.StartHeading)
	l.state.Pickup = l.placePickup()
	core.Logger().Info("game created",
		"grid", fmt.Sprintf("%dx%d", grid.W, grid.H),
		"seed", cfg.Seed,
		"framesPerTick", l.acc.FramesPerTick())
	return l, nil
}

// Config returns the effective configuration, including the resolved seed.
func (l *Loop) Config() Config { return l.cfg }

// Intent returns the heading request slot input handlers write to.
func (l *Loop) Intent() *snake.Intent { return &l.intent }

// State returns the current state. The snake must not be mutated.
func (l *Loop) State() State { return l.state }

// GameOver reports whether the snake has run into itself.
func (l *Loop) GameOver() bool { return l.state.GameOver }

// Start emits the background music cue.
func (l *Loop) Start() {
	l.audio.Play(SoundBackground)
}

// Frame runs the logic and the drawing of one display frame.
func (l *Loop) Frame(r Renderer) TickResult {
	res := l.Step()
	l.Draw(r)
	return res
}

// Step advances the frame accumulator and runs a logical tick when one is due.
// It does nothing once the game is over.
func (l *Loop) Step() TickResult {
	if l.state.GameOver {
		return TickResult{GameOver: true}
	}
	l.state.Frames++
	if !l.acc.Advance() {
		return TickResult{}
	}
	return l.tick()
}

func (l *Loop) tick() TickResult {
	s := l.state.Snake
	res := TickResult{Ticked: true}
	l.state.Ticks++

	if h, ok := l.intent.Heading(); ok && h != s.Heading() {
		if !s.SetHeading(h) {
			core.Logger().Debug("reversal ignored", "heading", h, "last", s.LastHeading())
		}
	}
	s.Move()

	if s.Position() == l.state.Pickup {
		if s.TailLen() == l.grid.Cells() {
			l.endGame("board full")
			res.GameOver = true
			return res
		}
		s.Grow()
		l.state.Score++
		l.state.Pickup = l.placePickup()
		l.audio.Play(SoundJingle)
		res.Ate = true
		core.Logger().Debug("pickup eaten", "score", l.state.Score, "next", l.state.Pickup)
	}

	if s.SelfIntersects() {
		l.endGame("self collision")
		res.GameOver = true
	}
	return res
}

func (l *Loop) endGame(reason string) {
	l.state.GameOver = true
	core.Logger().Info("game over",
		"reason", reason,
		"score", l.state.Score,
		"ticks", l.state.Ticks,
		"head", l.state.Snake.Position())
}

// placePickup draws a pickup cell. With PickupAvoidBody the snake's cells are
// rejected; if sampling keeps hitting the body the grid is scanned from a
// random offset. A board with no free cell yields the head position.
func (l *Loop) placePickup() core.Point {
	p := l.rng.Point(l.grid)
	if !l.cfg.PickupAvoidBody {
		return p
	}
	s := l.state.Snake
	for range maxPickupSamples {
		if !s.Occupies(p) {
			return p
		}
		p = l.rng.Point(l.grid)
	}
	cells := l.grid.Cells()
	off := l.rng.IntN(cells)
	for i := range cells {
		idx := (off + i) % cells
		q := core.Point{X: idx % l.grid.W, Y: idx / l.grid.W}
		if !s.Occupies(q) {
			return q
		}
	}
	return s.Position()
}

// Draw issues the draw calls for the current state: pickup first, then the
// head and every live tail cell.
func (l *Loop) Draw(r Renderer) {
	r.Clear()
	cs := l.cfg.CellSize
	center, size := render.CellRect(l.state.Pickup.X, l.state.Pickup.Y, cs)
	r.DrawRect(render.Green, center, size)

	s := l.state.Snake
	head := s.Position()
	center, size = render.CellRect(head.X, head.Y, cs)
	r.DrawRect(render.Red, center, size)
	for _, p := range s.Tail() {
		center, size = render.CellRect(p.X, p.Y, cs)
		r.DrawRect(render.Red, center, size)
	}
}

// Parameters returns the live values shown by the HUD.
func (l *Loop) Parameters() core.ParameterSnapshot {
	s := l.state.Snake
	status := "running"
	if l.state.GameOver {
		status = "game over"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Game",
			Params: []core.Parameter{
				{Key: "score", Label: "Score", Value: strconv.Itoa(l.state.Score)},
				{Key: "length", Label: "Length", Value: strconv.Itoa(s.Len())},
				{Key: "heading", Label: "Heading", Value: s.Heading().String()},
				{Key: "status", Label: "Status", Value: status},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				{Key: "ticks", Label: "Ticks", Value: strconv.Itoa(l.state.Ticks)},
				{Key: "frames", Label: "Frames", Value: strconv.Itoa(l.state.Frames)},
				{Key: "frames-per-tick", Label: "Frames/tick", Value: strconv.FormatFloat(l.acc.FramesPerTick(), 'f', 2, 64)},
			},
		},
		l.cfg.Parameters(),
	}}
}
