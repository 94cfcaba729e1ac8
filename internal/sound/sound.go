//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	defaultSoundDir = "assets/sounds"
	sampleRate      = beep.SampleRate(44100)
)

// SoundManager decodes the cue files once and plays them from memory.
type SoundManager struct {
	dir     string
	buffers map[string]*beep.Buffer
	enabled bool
}

// NewSoundManager reads cues from dir; an empty dir means assets/sounds.
func NewSoundManager(dir string) *SoundManager {
	if dir == "" {
		dir = defaultSoundDir
	}
	return &SoundManager{
		dir:     dir,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and loads the cues.
func (sm *SoundManager) Init() error {
	// 100ms buffer keeps cue latency low
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true
	return sm.load()
}

// load decodes every cue found in the sound directory. Missing files are skipped.
func (sm *SoundManager) load() error {
	if _, err := os.Stat(sm.dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	var errs []error
	for _, cue := range Cues {
		buf, err := sm.decodeCue(cue)
		if err != nil {
			if !os.IsNotExist(err) {
				errs = append(errs, fmt.Errorf("cue %s: %w", cue, err))
			}
			continue
		}
		sm.buffers[cue] = buf
	}
	return errors.Join(errs...)
}

// decodeCue tries <cue>.mp3 then <cue>.wav.
func (sm *SoundManager) decodeCue(cue string) (*beep.Buffer, error) {
	var lastErr error = os.ErrNotExist
	for _, ext := range []string{".mp3", ".wav"} {
		buf, err := decodeFile(filepath.Join(sm.dir, cue+ext), ext)
		if err == nil {
			return buf, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func decodeFile(path, ext string) (*beep.Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if ext == ".mp3" {
		streamer, format, err = mp3.Decode(f)
	} else {
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
	buf.Append(s)
	return buf, nil
}

// Loaded reports whether a cue was decoded.
func (sm *SoundManager) Loaded(name string) bool {
	_, ok := sm.buffers[name]
	return ok
}

// Play starts a cue without blocking; unknown cues are ignored.
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}
	if buf, ok := sm.buffers[name]; ok {
		speaker.Play(buf.Streamer(0, buf.Len()))
	}
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
