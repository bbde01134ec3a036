package core

import "testing"

func TestWrapEachAxis(t *testing.T) {
	g := NewGrid(40, 30)
	cases := []struct {
		in, want Point
	}{
		{Point{-1, 5}, Point{39, 5}},
		{Point{40, 5}, Point{0, 5}},
		{Point{5, -1}, Point{5, 29}},
		{Point{5, 30}, Point{5, 0}},
		{Point{-1, -1}, Point{39, 29}},
		{Point{40, 30}, Point{0, 0}},
		{Point{-41, 61}, Point{39, 1}},
		{Point{12, 7}, Point{12, 7}},
	}
	for _, c := range cases {
		if got := g.Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v) = %v, want %v", c.in, got, c.want)
		}
		if !g.Contains(g.Wrap(c.in)) {
			t.Errorf("Wrap(%v) escaped the grid", c.in)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
	if g.Cells() != 1 {
		t.Fatalf("expected 1 cell, got %d", g.Cells())
	}
}

func TestRNGPointStaysInGrid(t *testing.T) {
	g := NewGrid(7, 3)
	rng := NewRNG(42)
	seen := make(map[Point]bool)
	for i := 0; i < 2000; i++ {
		p := rng.Point(g)
		if !g.Contains(p) {
			t.Fatalf("rng produced %v outside %dx%d", p, g.W, g.H)
		}
		seen[p] = true
	}
	if len(seen) != g.Cells() {
		t.Fatalf("expected every cell to be drawn at least once, saw %d of %d", len(seen), g.Cells())
	}
}

func TestRNGDeterministic(t *testing.T) {
	g := NewGrid(40, 30)
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 50; i++ {
		if pa, pb := a.Point(g), b.Point(g); pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}
