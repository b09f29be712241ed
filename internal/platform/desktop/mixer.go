package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	sfx "github.com/vovakirdan/maze/internal/audio"
	"github.com/vovakirdan/maze/internal/config"
	"github.com/vovakirdan/maze/internal/core"
)

const sampleRate = 44100

// errNotLoaded is returned when asked to play a sound whose file failed
// to load at startup.
var errNotLoaded = errors.New("desktop: sound not loaded")

// Mixer plays the background music and sound effects through ebiten's
// audio context.
type Mixer struct {
	ctx    *audio.Context
	music  *audio.Player
	coin   *audio.Player
	impact *audio.Player
}

var _ sfx.Player = (*Mixer)(nil)

// NewMixer creates the audio context and decodes every sound in assets.
// Files that cannot be decoded are logged; playing them later fails with
// errNotLoaded.
func NewMixer(assets config.MazeAssets, logger *log.Logger) *Mixer {
	m := &Mixer{ctx: audio.NewContext(sampleRate)}
	load := func(name string) *audio.Player {
		if name == "" {
			return nil
		}
		p, err := m.loadSound(assetPath(assets.Dir, name))
		if err != nil {
			if logger != nil {
				logger.Warn("cannot load sound", "error", err)
			}
			return nil
		}
		return p
	}
	m.music = load(assets.Music)
	m.coin = load(assets.WinSound)
	m.impact = load(assets.ImpactSound)
	return m
}

// loadSound decodes an ogg or wav file fully into memory.
func (m *Mixer) loadSound(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("desktop: read %s: %w", path, err)
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("desktop: unsupported sound format %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("desktop: decode %s: %w", path, err)
	}

	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("desktop: player for %s: %w", path, err)
	}
	return p, nil
}

// PlayMusic starts the background track from the beginning.
func (m *Mixer) PlayMusic() error {
	return restart(m.music)
}

// StopMusic pauses the background track.
func (m *Mixer) StopMusic() error {
	if m.music == nil {
		return errNotLoaded
	}
	m.music.Pause()
	return nil
}

// Play starts a sound effect.
func (m *Mixer) Play(s core.Sound) error {
	switch s {
	case core.SoundCoin:
		return restart(m.coin)
	case core.SoundImpact:
		return restart(m.impact)
	default:
		return fmt.Errorf("desktop: unknown sound %d", s)
	}
}

func restart(p *audio.Player) error {
	if p == nil {
		return errNotLoaded
	}
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("desktop: rewind: %w", err)
	}
	p.Play()
	return nil
}
