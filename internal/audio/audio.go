// Package audio carries out the sound events emitted by game ticks.
// Playback failures never reach game logic: Dispatch logs and drops them.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze/internal/core"
)

// Player plays background music and sound effects.
type Player interface {
	PlayMusic() error
	StopMusic() error
	Play(s core.Sound) error
}

// Dispatch forwards the audio events in events to p. Errors are logged
// at warn level and otherwise ignored. A nil logger discards them.
func Dispatch(p Player, events []core.Event, logger *log.Logger) {
	if p == nil {
		return
	}
	for _, e := range events {
		var err error
		var what string
		switch e.Kind {
		case core.EventMusicStart:
			what, err = "music start", p.PlayMusic()
		case core.EventMusicStop:
			what, err = "music stop", p.StopMusic()
		case core.EventSound:
			what, err = e.Sound.String(), p.Play(e.Sound)
		default:
			continue
		}
		if err != nil && logger != nil {
			logger.Warn("audio playback failed", "what", what, "error", err)
		}
	}
}

// Nop is a Player that does nothing.
type Nop struct{}

func (Nop) PlayMusic() error      { return nil }
func (Nop) StopMusic() error      { return nil }
func (Nop) Play(core.Sound) error { return nil }

// Recorder remembers what it was asked to play. The terminal uses it to
// show sounds as captions; tests use it to observe dispatch.
type Recorder struct {
	MusicOn bool
	Sounds  []core.Sound
	// Err, when set, is returned from every call after recording it.
	Err error
}

// PlayMusic marks the music as playing.
func (r *Recorder) PlayMusic() error {
	r.MusicOn = true
	return r.Err
}

// StopMusic marks the music as stopped.
func (r *Recorder) StopMusic() error {
	r.MusicOn = false
	return r.Err
}

// Play appends s to the recorded sounds.
func (r *Recorder) Play(s core.Sound) error {
	r.Sounds = append(r.Sounds, s)
	return r.Err
}

// Last returns the most recent sound, if any.
func (r *Recorder) Last() (core.Sound, bool) {
	if len(r.Sounds) == 0 {
		return 0, false
	}
	return r.Sounds[len(r.Sounds)-1], true
}
