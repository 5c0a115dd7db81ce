package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"play-and-learn/internal/logger"
)

// SampleRate is the speaker output rate. Music at other rates is resampled.
const SampleRate beep.SampleRate = 44100

const resampleQuality = 4

// Output is the audio device. The default forwards to the beep speaker.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, n int) error { return speaker.Init(sr, n) }
func (speakerOutput) Play(s ...beep.Streamer)              { speaker.Play(s...) }
func (speakerOutput) Lock()                                { speaker.Lock() }
func (speakerOutput) Unlock()                              { speaker.Unlock() }
func (speakerOutput) Close()                               { speaker.Close() }

// SpeakerOutput returns the system audio device
func SpeakerOutput() Output { return speakerOutput{} }

type BeepPlayer struct {
	out    Output
	logger logger.Logger

	mu      sync.Mutex
	ready   bool
	broken  bool
	enabled bool
	muted   bool

	music  beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

func NewBeepPlayer(out Output, log logger.Logger, enabled bool) *BeepPlayer {
	return &BeepPlayer{out: out, logger: log, enabled: enabled}
}

// init opens the device on first use. A device failure disables sound for
// the rest of the process.
func (p *BeepPlayer) init() bool {
	if p.ready {
		return true
	}
	if p.broken {
		return false
	}
	if err := p.out.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		p.broken = true
		p.logger.Warning("Audio", "speaker unavailable, continuing without sound", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	p.ready = true
	return true
}

// PlayBackground replaces any current music with a looping stream of the WAV at path
func (p *BeepPlayer) PlayBackground(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return nil
	}
	p.stopLocked()

	stream, format, err := Decode(path)
	if err != nil {
		return err
	}
	looped, err := beep.Loop2(stream)
	if err != nil {
		stream.Close()
		return fmt.Errorf("loop %s: %w", path, err)
	}
	if !p.init() {
		stream.Close()
		return nil
	}

	var src beep.Streamer = looped
	if format.SampleRate != SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, SampleRate, looped)
	}
	p.ctrl = &beep.Ctrl{Streamer: src}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Silent: p.muted}
	p.music = stream
	p.out.Play(p.volume)

	p.logger.Info("Audio", "background music started", map[string]interface{}{
		"file":        path,
		"sample_rate": int(format.SampleRate),
	})
	return nil
}

// Decode opens and decodes a WAV file
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open %s: %w", path, err)
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, format, nil
}

func (p *BeepPlayer) StopBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *BeepPlayer) stopLocked() {
	if p.music == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Streamer = nil
	p.out.Unlock()
	if err := p.music.Close(); err != nil {
		p.logger.Warning("Audio", "closing music stream", map[string]interface{}{"error": err.Error()})
	}
	p.music, p.ctrl, p.volume = nil, nil, nil
	p.logger.Debug("Audio", "background music stopped", nil)
}

// SetMuted silences the music without stopping it
func (p *BeepPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if p.volume == nil {
		return
	}
	p.out.Lock()
	p.volume.Silent = muted
	p.out.Unlock()
}

// SetEnabled turns all sound on or off. Disabling stops the music.
func (p *BeepPlayer) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
	if !enabled {
		p.stopLocked()
	}
}

func (p *BeepPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *BeepPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil
}

// PlayEffect plays a generated tone sequence. Muting only affects music.
func (p *BeepPlayer) PlayEffect(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || !p.init() {
		return
	}
	s, err := Tone(e)
	if err != nil {
		p.logger.Warning("Audio", "effect unavailable", map[string]interface{}{
			"effect": e.String(),
			"error":  err.Error(),
		})
		return
	}
	p.out.Play(s)
}

func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	if p.ready {
		p.out.Close()
		p.ready = false
	}
	return nil
}

// Shutdown satisfies the shutdown manager
func (p *BeepPlayer) Shutdown() {
	p.Close()
}

type note struct {
	freq float64
	dur  time.Duration
}

var melodies = map[Effect][]note{
	EffectSuccess: {{880, 90 * time.Millisecond}, {1320, 140 * time.Millisecond}},
	EffectError:   {{220, 250 * time.Millisecond}},
	EffectVictory: {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 120 * time.Millisecond}, {1046.5, 300 * time.Millisecond}},
}

// Tone builds the finite stream for an effect at SampleRate
func Tone(e Effect) (beep.Streamer, error) {
	notes, ok := melodies[e]
	if !ok {
		return nil, fmt.Errorf("unknown effect %v", e)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %v Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(SampleRate.N(n.dur), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}
