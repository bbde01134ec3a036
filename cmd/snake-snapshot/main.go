package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
	"christmas-snake/internal/render"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := game.NewConfig()
	cfg.Seed = 1
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 600, "display frames to simulate before the snapshot")
	out := flag.String("out", "snapshot.png", "PNG file to write")
	script := flag.String("script", "", "turns as frame:heading pairs, e.g. 60:right,120:down")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg, overrides, *frames, *script, *out); err != nil {
		core.Logger().Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *game.Config, overrides kvList, frames int, script, out string) error {
	values := make(map[string]string, len(overrides))
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("override %q: want key=value", kv)
		}
		values[parts[0]] = parts[1]
	}
	if err := cfg.FromMap(values); err != nil {
		return err
	}
	turns, err := parseScript(script)
	if err != nil {
		return err
	}

	loop, err := game.NewLoop(*cfg, game.NopAudio{})
	if err != nil {
		return err
	}
	for f := 1; f <= frames && !loop.GameOver(); f++ {
		if h, ok := turns[f]; ok {
			loop.Intent().Set(h)
		}
		loop.Step()
	}

	size := cfg.Size()
	snap := render.NewSnapshot()
	if err := snap.Init(size); err != nil {
		return err
	}
	defer snap.Release()
	snap.Configure(size.W, size.H)
	loop.Draw(snap)
	if err := snap.SavePNG(out); err != nil {
		return err
	}

	st := loop.State()
	fmt.Printf("wrote %s: frames %d, ticks %d, score %d, length %d, game over %v\n",
		out, st.Frames, st.Ticks, st.Score, st.Snake.Len(), st.GameOver)
	for _, line := range loop.Parameters().Lines() {
		fmt.Println(line)
	}
	return nil
}

// parseScript reads "frame:heading" pairs separated by commas.
func parseScript(s string) (map[int]core.Heading, error) {
	turns := map[int]core.Heading{}
	if strings.TrimSpace(s) == "" {
		return turns, nil
	}
	for _, item := range strings.Split(s, ",") {
		var frame int
		var name string
		parts := strings.SplitN(strings.TrimSpace(item), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("script entry %q: want frame:heading", item)
		}
		if _, err := fmt.Sscanf(parts[0], "%d", &frame); err != nil || frame <= 0 {
			return nil, fmt.Errorf("script entry %q: bad frame", item)
		}
		name = parts[1]
		h, err := core.ParseHeading(name)
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", item, err)
		}
		turns[frame] = h
	}
	return turns, nil
}
