package game

// Sound identifies one of the game's audio cues.
type Sound uint8

const (
	// SoundJingle plays once per pickup eaten.
	SoundJingle Sound = iota + 1
	// SoundBackground is the looping music started with the game.
	SoundBackground
)

func (s Sound) String() string {
	switch s {
	case SoundJingle:
		return "jingle"
	case SoundBackground:
		return "background"
	default:
		return "unknown"
	}
}

// AudioPlayer plays sound cues. Play must not block the frame.
type AudioPlayer interface {
	Play(Sound)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Play(Sound) {}
