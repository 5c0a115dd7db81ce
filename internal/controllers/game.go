package controllers

import (
	"slices"
	"time"

	"play-and-learn/internal/events"
	"play-and-learn/internal/logger"
	"play-and-learn/internal/models"
)

// gameDeps is what every mini-game controller shares
type gameDeps struct {
	sched   Scheduler
	bus     Publisher
	nav     Navigator
	logger  logger.Logger
	session string
}

func (d gameDeps) publish(t events.Type, data map[string]interface{}) {
	if d.bus == nil {
		return
	}
	if !d.bus.Publish(events.Event{Type: t, SessionID: d.session, Data: data}) {
		d.logger.Debug("Game", "event not delivered", map[string]interface{}{
			"event": string(t),
		})
	}
}

// menu handles a choice from the end-of-game dialog of level d
func (d gameDeps) menu(level models.Difficulty, choice models.MenuChoice) {
	switch choice {
	case models.PlayAgain:
		d.nav.OpenGame(level)
	case models.NextMode:
		if next, ok := level.Next(); ok {
			d.nav.OpenGame(next)
			return
		}
		d.nav.BackToMenu()
	default:
		d.nav.BackToMenu()
	}
}

// timers tracks the pending callbacks of a controller so Stop can cancel them.
// Fired and stopped timers leave the list.
type timers struct {
	pending []Timer
	stopped bool
}

func (t *timers) track(timer Timer) Timer {
	t.pending = append(t.pending, timer)
	return timer
}

func (t *timers) untrack(timer Timer) {
	t.pending = slices.DeleteFunc(t.pending, func(p Timer) bool { return p == timer })
}

// after runs fn once after d and forgets the timer when it fires
func (t *timers) after(s Scheduler, d time.Duration, fn func()) {
	var timer Timer
	timer = s.After(d, func() {
		t.untrack(timer)
		fn()
	})
	t.track(timer)
}

// cancel stops one tracked timer
func (t *timers) cancel(timer Timer) {
	timer.Stop()
	t.untrack(timer)
}

func (t *timers) stopAll() {
	t.stopped = true
	for _, timer := range t.pending {
		timer.Stop()
	}
	t.pending = nil
}
