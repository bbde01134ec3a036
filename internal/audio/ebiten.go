//go:build ebiten

package audio

import (
	"bytes"
	"fmt"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"christmas-snake/internal/core"
	"christmas-snake/internal/game"
)

// EbitenPlayer plays game cues through ebiten's audio context.
type EbitenPlayer struct {
	jingle     *eaudio.Player
	background *eaudio.Player
}

// NewEbitenPlayer creates the players for every cue, reusing the process-wide
// audio context when one exists.
func NewEbitenPlayer() (*EbitenPlayer, error) {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(SampleRate)
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d", ctx.SampleRate(), SampleRate)
	}

	jingle := ctx.NewPlayerFromBytes(PCM16(Jingle.Render(SampleRate)))

	pcm := PCM16(Background.Render(SampleRate))
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	background, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("background player: %w", err)
	}
	background.SetVolume(0.5)
	return &EbitenPlayer{jingle: jingle, background: background}, nil
}

// Play starts a cue. A jingle already in progress restarts.
func (p *EbitenPlayer) Play(s game.Sound) {
	switch s {
	case game.SoundJingle:
		if err := p.jingle.Rewind(); err != nil {
			core.Logger().Warn("rewind jingle", "err", err)
			return
		}
		p.jingle.Play()
	case game.SoundBackground:
		if !p.background.IsPlaying() {
			p.background.Play()
		}
	default:
		core.Logger().Warn("unknown sound", "sound", s)
	}
}

// Close stops and releases both players.
func (p *EbitenPlayer) Close() error {
	if err := p.jingle.Close(); err != nil {
		return err
	}
	return p.background.Close()
}
