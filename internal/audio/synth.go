package audio

import (
	"math"
	"time"

	"christmas-snake/internal/game"
)

// SampleRate is shared by every player.
const SampleRate = 44100

// Note is a single pitch held for a number of beats. Freq 0 is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// Melody is a monophonic tune rendered with a plucked envelope.
type Melody struct {
	BPM   float64
	Gain  float64
	Notes []Note
}

const (
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	f4 = 349.23
	g4 = 392.00
	a4 = 440.00
	b4 = 493.88
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	f5 = 698.46
	g5 = 783.99
)

// Jingle is the short cue played on every pickup.
var Jingle = Melody{
	BPM:  300,
	Gain: 0.35,
	Notes: []Note{
		{e5, 1}, {e5, 1}, {e5, 2},
		{e5, 1}, {e5, 1}, {e5, 2},
		{e5, 1}, {g5, 1}, {c5, 1.5}, {d5, 0.5}, {e5, 4},
	},
}

// Background loops for as long as the game runs.
var Background = Melody{
	BPM:  140,
	Gain: 0.12,
	Notes: []Note{
		{g4, 1}, {e5, 1}, {d5, 1}, {c5, 1}, {g4, 3}, {0, 1},
		{g4, 1}, {e5, 1}, {d5, 1}, {c5, 1}, {a4, 3}, {0, 1},
		{a4, 1}, {f5, 1}, {e5, 1}, {d5, 1}, {b4, 3}, {0, 1},
		{g5, 1}, {g5, 1}, {f5, 1}, {d5, 1}, {e5, 3}, {0, 1},
		{c4, 1}, {e4, 1}, {g4, 1}, {c5, 1}, {d4, 1}, {f4, 1}, {a4, 1}, {b4, 1},
	},
}

// MelodyFor maps a game cue to its tune.
func MelodyFor(s game.Sound) (Melody, bool) {
	switch s {
	case game.SoundJingle:
		return Jingle, true
	case game.SoundBackground:
		return Background, true
	}
	return Melody{}, false
}

func (m Melody) noteSamples(n Note, rate int) int {
	return int(n.Beats * 60 / m.BPM * float64(rate))
}

// Samples returns the rendered length in samples at rate.
func (m Melody) Samples(rate int) int {
	total := 0
	for _, n := range m.Notes {
		total += m.noteSamples(n, rate)
	}
	return total
}

// Duration returns the playing time of one pass.
func (m Melody) Duration() time.Duration {
	beats := 0.0
	for _, n := range m.Notes {
		beats += n.Beats
	}
	return time.Duration(beats * 60 / m.BPM * float64(time.Second))
}

// Render synthesizes the melody as mono samples in [-1, 1].
func (m Melody) Render(rate int) []float32 {
	out := make([]float32, 0, m.Samples(rate))
	attack := float64(rate) * 0.005
	release := float64(rate) * 0.012
	for _, n := range m.Notes {
		count := m.noteSamples(n, rate)
		for i := range count {
			if n.Freq == 0 {
				out = append(out, 0)
				continue
			}
			t := float64(i) / float64(rate)
			env := math.Exp(-3 * t)
			if fi := float64(i); fi < attack {
				env *= fi / attack
			}
			if left := float64(count - i); left < release {
				env *= left / release
			}
			v := math.Sin(2*math.Pi*n.Freq*t) + 0.3*math.Sin(4*math.Pi*n.Freq*t)
			out = append(out, float32(clamp(m.Gain*env*v)))
		}
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// PCM16 encodes mono samples as interleaved little-endian 16-bit stereo.
func PCM16(samples []float32) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(clamp(float64(s)) * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
