package render

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"christmas-snake/internal/core"
)

func rgbAt(s *Snapshot, x, y int) color.RGBA {
	r, g, b, _ := s.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

func TestSnapshotDrawsCellAtGridPosition(t *testing.T) {
	s := NewSnapshot()
	if err := s.Init(core.Size{W: 800, H: 600}); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer s.Release()
	s.Configure(800, 600)

	s.Clear()
	center, size := CellRect(20, 15, 20)
	s.DrawRect(Red, center, size)

	if got := rgbAt(s, 410, 290); got != Red.RGBA() {
		t.Fatalf("inside: %+v", got)
	}
	for _, p := range [][2]int{{430, 290}, {410, 270}, {410, 305}, {10, 10}} {
		if got := rgbAt(s, p[0], p[1]); got != Black.RGBA() {
			t.Fatalf("outside %v: %+v", p, got)
		}
	}
}

func TestSnapshotYUp(t *testing.T) {
	s := NewSnapshot()
	if err := s.Init(core.Size{W: 100, H: 100}); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer s.Release()
	s.Configure(100, 100)
	s.Clear()
	center, size := CellRect(0, 0, 10)
	s.DrawRect(Green, center, size)

	if got := rgbAt(s, 5, 95); got != Green.RGBA() {
		t.Fatalf("bottom-left: %+v", got)
	}
	if got := rgbAt(s, 5, 5); got != Black.RGBA() {
		t.Fatalf("top-left: %+v", got)
	}
}

func TestSnapshotLifecycle(t *testing.T) {
	s := NewSnapshot()
	if s.State() != StateUninitialized {
		t.Fatalf("state %v", s.State())
	}
	if err := s.Init(core.Size{}); err == nil {
		t.Fatal("expected empty size error")
	}
	if err := s.Init(core.Size{W: 4, H: 4}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := s.Init(core.Size{W: 4, H: 4}); err != nil {
		t.Fatalf("second init: %v", err)
	}
	s.Release()
	s.Release()
	if s.State() != StateReleased {
		t.Fatalf("state %v", s.State())
	}
	if err := s.Init(core.Size{W: 4, H: 4}); !errors.Is(err, ErrNotReady) {
		t.Fatalf("init after release: %v", err)
	}
}

func TestSnapshotSavePNG(t *testing.T) {
	s := NewSnapshot()
	if err := s.Init(core.Size{W: 20, H: 20}); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer s.Release()
	s.Configure(20, 20)
	s.Clear()
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("stat: %v", err)
	}
}
