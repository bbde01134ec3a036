package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
)

var beepFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// BeepPlayer plays game cues on the system speaker through a single mixer.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[game.Sound]*beep.Buffer
	background  *beep.Ctrl
	initialized bool
}

// NewBeepPlayer renders every cue into memory. No device is opened until Init.
func NewBeepPlayer() *BeepPlayer {
	p := &BeepPlayer{
		mixer:   &beep.Mixer{},
		buffers: make(map[game.Sound]*beep.Buffer),
	}
	for _, s := range []game.Sound{game.SoundJingle, game.SoundBackground} {
		m, _ := MelodyFor(s)
		buf := beep.NewBuffer(beepFormat)
		buf.Append(&sampleStreamer{samples: m.Render(SampleRate)})
		p.buffers[s] = buf
	}
	return p
}

// Init opens the speaker and starts the mixer.
func (p *BeepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	sr := beepFormat.SampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue. The background music is started at most once.
func (p *BeepPlayer) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer, ok := p.streamer(s)
	if !ok {
		core.Logger().Warn("unknown sound", "sound", s)
		return
	}
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// streamer returns nil with ok set when the cue is already playing.
func (p *BeepPlayer) streamer(s game.Sound) (beep.Streamer, bool) {
	buf, ok := p.buffers[s]
	if !ok {
		return nil, false
	}
	src := buf.Streamer(0, buf.Len())
	if s != game.SoundBackground {
		return src, true
	}
	if p.background != nil {
		return nil, true
	}
	p.background = &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: beep.Loop(-1, src),
		Base:     2,
		Volume:   -1,
	}}
	return p.background, true
}

// Close stops every cue and releases the device.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.background != nil {
		p.background.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.background = nil
	p.initialized = false
}

// sampleStreamer feeds mono samples to both channels.
type sampleStreamer struct {
	samples []float32
	pos     int
}

func (s *sampleStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy2(out, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }

func copy2(out [][2]float64, in []float32) int {
	n := min(len(out), len(in))
	for i := range n {
		v := float64(in[i])
		out[i][0], out[i][1] = v, v
	}
	return n
}
