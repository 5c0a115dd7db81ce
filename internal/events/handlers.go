package events

import (
	"sync"

	"play-and-learn/internal/audio"
	"play-and-learn/internal/logger"
)

// AudioFeedback turns gameplay events into feedback sounds
type AudioFeedback struct {
	player audio.Player
}

func NewAudioFeedback(player audio.Player) *AudioFeedback {
	return &AudioFeedback{player: player}
}

// Types lists the events AudioFeedback reacts to
func (a *AudioFeedback) Types() []Type {
	return []Type{ShapeMatched, ShapeMismatched, BoardCompleted, AnswerCorrect, AnswerWrong, GameFinished}
}

func (a *AudioFeedback) Handle(event Event) {
	switch event.Type {
	case ShapeMatched, AnswerCorrect:
		a.player.PlayEffect(audio.EffectSuccess)
	case ShapeMismatched, AnswerWrong:
		a.player.PlayEffect(audio.EffectError)
	case BoardCompleted, GameFinished:
		a.player.PlayEffect(audio.EffectVictory)
	}
}

func (a *AudioFeedback) GetID() string { return "audio-feedback" }

// Telemetry logs every event and keeps per-type counts for the session
type Telemetry struct {
	logger logger.Logger
	mu     sync.Mutex
	counts map[Type]int
}

func NewTelemetry(log logger.Logger) *Telemetry {
	return &Telemetry{logger: log, counts: make(map[Type]int)}
}

func (t *Telemetry) Handle(event Event) {
	t.mu.Lock()
	t.counts[event.Type]++
	t.mu.Unlock()

	fields := map[string]interface{}{
		"event":   string(event.Type),
		"session": event.SessionID,
	}
	for k, v := range event.Data {
		fields[k] = v
	}

	switch event.Type {
	case GameStarted, GameFinished, BoardCompleted, SettingsChanged:
		t.logger.Info("Telemetry", "gameplay event", fields)
	default:
		t.logger.Debug("Telemetry", "gameplay event", fields)
	}
}

func (t *Telemetry) GetID() string { return "telemetry" }

// Count returns how many events of the type were seen
func (t *Telemetry) Count(eventType Type) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[eventType]
}
