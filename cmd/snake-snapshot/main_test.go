package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
)

func TestParseScript(t *testing.T) {
	turns, err := parseScript("6:right, 12:down")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if turns[6] != core.HeadingRight || turns[12] != core.HeadingDown || len(turns) != 2 {
		t.Fatalf("turns %v", turns)
	}
	if _, err := parseScript("6:sideways"); !errors.Is(err, core.ErrInvalidHeading) {
		t.Fatalf("heading error %v", err)
	}
	for _, bad := range []string{"right", "0:up", "x:up"} {
		if _, err := parseScript(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestRunWritesPNG(t *testing.T) {
	cfg := game.NewConfig()
	cfg.Seed = 5
	out := filepath.Join(t.TempDir(), "snap.png")
	err := run(cfg, kvList{"grid-width=10", "grid-height=10", "start-x=2", "start-y=2", "cell-size=8"}, 60, "30:right", out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st, err := os.Stat(out); err != nil || st.Size() == 0 {
		t.Fatalf("stat: %v", err)
	}
	if err := run(game.NewConfig(), kvList{"grid-width"}, 1, "", out); err == nil {
		t.Fatal("malformed override accepted")
	}
}
