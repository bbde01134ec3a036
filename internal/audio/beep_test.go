package audio

import (
	"testing"

	"christmas-snake/internal/game"
)

func TestBeepPlayerBuffersEveryCue(t *testing.T) {
	p := NewBeepPlayer()
	for _, s := range []game.Sound{game.SoundJingle, game.SoundBackground} {
		m, _ := MelodyFor(s)
		buf, ok := p.buffers[s]
		if !ok {
			t.Fatalf("%v not buffered", s)
		}
		if buf.Len() != m.Samples(SampleRate) {
			t.Fatalf("%v: %d samples, want %d", s, buf.Len(), m.Samples(SampleRate))
		}
	}
	// Without a device Play and Close are no-ops.
	p.Play(game.SoundJingle)
	p.Close()
}

func TestBackgroundStreamerCreatedOnce(t *testing.T) {
	p := NewBeepPlayer()
	first, ok := p.streamer(game.SoundBackground)
	if !ok || first == nil {
		t.Fatal("no background streamer")
	}
	again, ok := p.streamer(game.SoundBackground)
	if !ok || again != nil {
		t.Fatal("background started twice")
	}
	if _, ok := p.streamer(game.Sound(42)); ok {
		t.Fatal("unknown sound accepted")
	}
}

func TestSampleStreamerDrains(t *testing.T) {
	s := &sampleStreamer{samples: []float32{0.5, -0.5, 0.25}}
	out := make([][2]float64, 2)
	n, ok := s.Stream(out)
	if n != 2 || !ok || out[1][0] != -0.5 || out[1][1] != -0.5 {
		t.Fatalf("first: n=%d ok=%v out=%v", n, ok, out)
	}
	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("second: n=%d ok=%v", n, ok)
	}
	if n, ok = s.Stream(out); n != 0 || ok {
		t.Fatalf("drained: n=%d ok=%v", n, ok)
	}
}

func TestBackgroundStreamerLoops(t *testing.T) {
	p := NewBeepPlayer()
	n := p.buffers[game.SoundBackground].Len()
	bg, ok := p.streamer(game.SoundBackground)
	if !ok || bg == nil {
		t.Fatal("no background streamer")
	}
	out := make([][2]float64, 2*n+100)
	filled := 0
	for filled < len(out) {
		k, ok := bg.Stream(out[filled:])
		if !ok || k == 0 {
			t.Fatalf("background stopped after %d of %d samples", filled, len(out))
		}
		filled += k
	}
	for _, i := range []int{0, 1, 50, 99} {
		if out[n+i] != out[i] || out[2*n+i] != out[i] {
			t.Fatalf("sample %d does not repeat: %v %v %v", i, out[i], out[n+i], out[2*n+i])
		}
	}
}
