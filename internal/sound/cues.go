package sound

// Cue names; each maps to <dir>/<name>.mp3 or .wav.
const (
	CueSetFound = "set"
	CueNotSet   = "miss"
	CueDeal     = "deal"
	CueGameOver = "over"
)

// Cues lists every cue the game plays.
var Cues = []string{CueSetFound, CueNotSet, CueDeal, CueGameOver}

// Player plays named cues. *SoundManager satisfies it.
type Player interface {
	Play(name string)
}

// Mute is a Player that does nothing.
type Mute struct{}

func (Mute) Play(string) {}
