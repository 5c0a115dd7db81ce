// Package audio plays the looping background music and short feedback tones.
// Every failure is absorbed: the game keeps running silently.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrAssetNotFound is returned when a sound file is not in any search path
var ErrAssetNotFound = errors.New("audio asset not found")

// SearchPaths are tried in order below the asset directory
var SearchPaths = []string{".", "music", "assets"}

// Effect is a short feedback sound
type Effect int

const (
	EffectSuccess Effect = iota
	EffectError
	EffectVictory
)

func (e Effect) String() string {
	switch e {
	case EffectSuccess:
		return "success"
	case EffectError:
		return "error"
	case EffectVictory:
		return "victory"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Player is the sound surface the controllers talk to
type Player interface {
	PlayBackground(path string) error
	StopBackground()
	SetMuted(muted bool)
	SetEnabled(enabled bool)
	Enabled() bool
	Playing() bool
	PlayEffect(e Effect)
	Close() error
}

// Resolve finds name under dir using SearchPaths
func Resolve(dir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty file name", ErrAssetNotFound)
	}
	for _, sub := range SearchPaths {
		path := filepath.Join(dir, sub, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrAssetNotFound, name, dir)
}

// NopPlayer tracks state without producing sound
type NopPlayer struct {
	enabled bool
	muted   bool
	playing bool
	Effects []Effect
}

func NewNopPlayer(enabled bool) *NopPlayer {
	return &NopPlayer{enabled: enabled}
}

func (p *NopPlayer) PlayBackground(string) error {
	if p.enabled {
		p.playing = true
	}
	return nil
}

func (p *NopPlayer) StopBackground() {
	p.playing = false
}

func (p *NopPlayer) SetMuted(m bool) { p.muted = m }
func (p *NopPlayer) Muted() bool     { return p.muted }

func (p *NopPlayer) SetEnabled(e bool) {
	p.enabled = e
	if !e {
		p.StopBackground()
	}
}

func (p *NopPlayer) Enabled() bool { return p.enabled }
func (p *NopPlayer) Playing() bool { return p.playing }

func (p *NopPlayer) PlayEffect(e Effect) {
	if p.enabled {
		p.Effects = append(p.Effects, e)
	}
}

func (p *NopPlayer) Close() error { return nil }
