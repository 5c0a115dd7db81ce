package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"

	"play-and-learn/internal/logger"
)

type fakeOutput struct {
	mu      sync.Mutex
	initErr error
	inits   int
	played  []beep.Streamer
	closed  bool
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.inits++
	return f.initErr
}

func (f *fakeOutput) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeOutput) Lock()                   { f.mu.Lock() }
func (f *fakeOutput) Unlock()                 { f.mu.Unlock() }
func (f *fakeOutput) Close()                  { f.closed = true }

// writeWAV stores a short mono sine tone and returns its path
func writeWAV(t *testing.T, dir string, rate beep.SampleRate) string {
	t.Helper()
	path := filepath.Join(dir, "background_music.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tone, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(50*time.Millisecond), tone), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "music"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "music", "song.wav")
	if err := os.WriteFile(want, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(dir, "song.wav")
	if err != nil || got != want {
		t.Errorf("Resolve = %q, %v; want %q", got, err, want)
	}

	if _, err := Resolve(dir, "missing.wav"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("missing file error = %v, want ErrAssetNotFound", err)
	}
	if _, err := Resolve(dir, "music"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("directory must not resolve, got %v", err)
	}
}

func TestBeepPlayer_Background(t *testing.T) {
	out := &fakeOutput{}
	p := NewBeepPlayer(out, logger.Nop{}, true)
	path := writeWAV(t, t.TempDir(), SampleRate)

	if err := p.PlayBackground(path); err != nil {
		t.Fatalf("PlayBackground: %v", err)
	}
	if !p.Playing() || len(out.played) != 1 || out.inits != 1 {
		t.Fatalf("playing=%v played=%d inits=%d", p.Playing(), len(out.played), out.inits)
	}

	// the loop never runs dry
	buf := make([][2]float64, SampleRate.N(200*time.Millisecond))
	if n, ok := out.played[0].Stream(buf); !ok || n != len(buf) {
		t.Errorf("looped stream returned %d, %v", n, ok)
	}

	p.SetMuted(true)
	if vol, ok := out.played[0].(*effects.Volume); !ok || !vol.Silent {
		t.Error("mute should silence the music volume")
	}

	// restarting replaces the stream
	if err := p.PlayBackground(path); err != nil {
		t.Fatalf("second PlayBackground: %v", err)
	}
	if len(out.played) != 2 || out.inits != 1 {
		t.Errorf("played=%d inits=%d, want 2/1", len(out.played), out.inits)
	}
	if _, ok := out.played[0].Stream(buf); ok {
		t.Error("replaced music stream still produces samples")
	}

	p.SetEnabled(false)
	if p.Playing() {
		t.Error("disabling sound must stop music")
	}
	if err := p.PlayBackground(path); err != nil || p.Playing() {
		t.Errorf("disabled player started music (err=%v)", err)
	}

	p.Close()
	if !out.closed {
		t.Error("Close should close the output")
	}
}

func TestBeepPlayer_Resamples(t *testing.T) {
	out := &fakeOutput{}
	p := NewBeepPlayer(out, logger.Nop{}, true)
	if err := p.PlayBackground(writeWAV(t, t.TempDir(), 22050)); err != nil {
		t.Fatalf("PlayBackground: %v", err)
	}
	if !p.Playing() {
		t.Error("22.05 kHz music should play after resampling")
	}
}

func TestBeepPlayer_BadFiles(t *testing.T) {
	out := &fakeOutput{}
	p := NewBeepPlayer(out, logger.Nop{}, true)

	if err := p.PlayBackground(filepath.Join(t.TempDir(), "none.wav")); err == nil {
		t.Error("missing file should fail")
	}
	junk := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(junk, []byte("not a wav file at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := p.PlayBackground(junk); err == nil {
		t.Error("undecodable file should fail")
	}
	if p.Playing() || len(out.played) != 0 {
		t.Error("nothing should play")
	}
}

func TestBeepPlayer_DeviceFailure(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no audio device")}
	p := NewBeepPlayer(out, logger.Nop{}, true)

	if err := p.PlayBackground(writeWAV(t, t.TempDir(), SampleRate)); err != nil {
		t.Errorf("device failure must not propagate: %v", err)
	}
	p.PlayEffect(EffectSuccess)
	if out.inits != 1 {
		t.Errorf("device opened %d times, want 1", out.inits)
	}
	if len(out.played) != 0 || p.Playing() {
		t.Error("nothing should play without a device")
	}
}

func TestBeepPlayer_Effects(t *testing.T) {
	out := &fakeOutput{}
	p := NewBeepPlayer(out, logger.Nop{}, true)
	p.SetMuted(true)
	p.PlayEffect(EffectVictory)
	if len(out.played) != 1 {
		t.Fatalf("played %d streams, want 1", len(out.played))
	}

	p.SetEnabled(false)
	p.PlayEffect(EffectError)
	if len(out.played) != 1 {
		t.Error("disabled player played an effect")
	}
}

func TestBeepPlayer_StopKeepsEffects(t *testing.T) {
	out := &fakeOutput{}
	p := NewBeepPlayer(out, logger.Nop{}, true)
	if err := p.PlayBackground(writeWAV(t, t.TempDir(), SampleRate)); err != nil {
		t.Fatalf("PlayBackground: %v", err)
	}
	p.PlayEffect(EffectVictory)
	if len(out.played) != 2 {
		t.Fatalf("played %d streams, want music and effect", len(out.played))
	}
	music, effect := out.played[0], out.played[1]

	p.StopBackground()
	if p.Playing() {
		t.Error("music still reported playing")
	}

	buf := make([][2]float64, 256)
	if _, ok := music.Stream(buf); ok {
		t.Error("stopped music stream still produces samples")
	}
	if n, ok := effect.Stream(buf); !ok || n != len(buf) {
		t.Errorf("effect cut off by stopping music: %d, %v", n, ok)
	}
}

func TestTone_Length(t *testing.T) {
	tests := []struct {
		effect Effect
		want   time.Duration
	}{
		{EffectSuccess, 230 * time.Millisecond},
		{EffectError, 250 * time.Millisecond},
		{EffectVictory, 660 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			s, err := Tone(tt.effect)
			if err != nil {
				t.Fatalf("Tone: %v", err)
			}
			total := 0
			buf := make([][2]float64, 512)
			for {
				n, ok := s.Stream(buf)
				total += n
				if !ok {
					break
				}
			}
			want := SampleRate.N(tt.want)
			if diff := total - want; diff < -4 || diff > 4 {
				t.Errorf("%d samples, want about %d", total, want)
			}
		})
	}
	if _, err := Tone(Effect(42)); err == nil {
		t.Error("unknown effect should fail")
	}
}

func TestNopPlayer(t *testing.T) {
	p := NewNopPlayer(true)
	var _ Player = p
	p.PlayBackground("x")
	if !p.Playing() {
		t.Error("background not playing")
	}
	p.PlayEffect(EffectSuccess)
	p.SetEnabled(false)
	p.PlayEffect(EffectError)
	if p.Playing() || len(p.Effects) != 1 {
		t.Errorf("playing=%v effects=%v", p.Playing(), p.Effects)
	}
}
