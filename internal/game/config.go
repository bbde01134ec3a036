package game

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"christmas-snake/internal/core"
)

// Config holds the tunable parameters of a game session.
type Config struct {
	TicksPerSecond  int
	FPS             int
	GridWidth       int
	GridHeight      int
	CellSize        int
	StartX          int
	StartY          int
	StartHeading    core.Heading
	Seed            int64
	PickupAvoidBody bool
	Mute            bool
	LogLevel        slog.Level
}

// NewConfig returns a Config populated with the classic 40x30 board.
func NewConfig() *Config {
	return &Config{
		TicksPerSecond:  10,
		FPS:             60,
		GridWidth:       40,
		GridHeight:      30,
		CellSize:        20,
		StartX:          20,
		StartY:          15,
		StartHeading:    core.HeadingUp,
		PickupAvoidBody: true,
		LogLevel:        slog.LevelInfo,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TicksPerSecond, "ticks-per-second", c.TicksPerSecond, "logical ticks per second")
	fs.IntVar(&c.FPS, "fps", c.FPS, "display frames per second the host drives")
	fs.IntVar(&c.GridWidth, "grid-width", c.GridWidth, "board width in cells")
	fs.IntVar(&c.GridHeight, "grid-height", c.GridHeight, "board height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in logical pixels")
	fs.IntVar(&c.StartX, "start-x", c.StartX, "starting head column")
	fs.IntVar(&c.StartY, "start-y", c.StartY, "starting head row (row 0 is the bottom)")
	fs.Var(&c.StartHeading, "start-heading", "starting heading: up, right, down or left")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "pickup RNG seed (0 picks one from the clock)")
	fs.BoolVar(&c.PickupAvoidBody, "pickup-avoid-body", c.PickupAvoidBody, "never place the pickup on the snake")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	fs.TextVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// FromMap applies key=value overrides using the same names as the flags.
func (c *Config) FromMap(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	fs := flag.NewFlagSet("overrides", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if fs.Lookup(k) == nil {
			return fmt.Errorf("override %q: unknown parameter", k)
		}
		if err := fs.Set(k, values[k]); err != nil {
			return fmt.Errorf("override %s=%q: %w", k, values[k], err)
		}
	}
	return nil
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    int
	}{
		{"ticks-per-second", c.TicksPerSecond},
		{"fps", c.FPS},
		{"grid-width", c.GridWidth},
		{"grid-height", c.GridHeight},
		{"cell-size", c.CellSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.v))
		}
	}
	if c.GridWidth > 0 && c.GridHeight > 0 && !c.Grid().Contains(c.Start()) {
		errs = append(errs, fmt.Errorf("start (%d,%d) outside %dx%d grid", c.StartX, c.StartY, c.GridWidth, c.GridHeight))
	}
	if !c.StartHeading.Valid() {
		errs = append(errs, fmt.Errorf("start-heading: %w", core.ErrInvalidHeading))
	}
	return errors.Join(errs...)
}

// Grid returns the board lattice.
func (c *Config) Grid() core.Grid { return core.NewGrid(c.GridWidth, c.GridHeight) }

// Start returns the starting head position.
func (c *Config) Start() core.Point { return core.Point{X: c.StartX, Y: c.StartY} }

// Size returns the logical surface size in pixels.
func (c *Config) Size() core.Size {
	return core.Size{W: c.GridWidth * c.CellSize, H: c.GridHeight * c.CellSize}
}

// Parameters exposes the configuration for display.
func (c *Config) Parameters() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Config",
		Params: []core.Parameter{
			{Key: "ticks-per-second", Label: "TPS", Value: strconv.Itoa(c.TicksPerSecond)},
			{Key: "fps", Label: "FPS", Value: strconv.Itoa(c.FPS)},
			{Key: "grid", Label: "Grid", Value: fmt.Sprintf("%dx%d", c.GridWidth, c.GridHeight)},
			{Key: "seed", Label: "Seed", Value: strconv.FormatInt(c.Seed, 10)},
			{Key: "pickup-avoid-body", Label: "Avoid body", Value: strconv.FormatBool(c.PickupAvoidBody)},
		},
	}
}
