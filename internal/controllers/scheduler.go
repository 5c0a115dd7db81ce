package controllers

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
)

// Timer is a cancellable scheduled callback
type Timer interface {
	// Stop cancels future runs and reports whether the timer was still active.
	Stop() bool
}

// Scheduler runs callbacks later on the UI loop. Controllers get all of
// their notion of time from it.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
	Every(d time.Duration, fn func()) Timer
	Now() time.Time
}

// FyneScheduler fires callbacks through fyne.Do so they never race with input handling
type FyneScheduler struct {
	mu     sync.Mutex
	timers map[*fyneTimer]struct{}
	closed bool
}

func NewFyneScheduler() *FyneScheduler {
	return &FyneScheduler{timers: make(map[*fyneTimer]struct{})}
}

type fyneTimer struct {
	stopped atomic.Bool
	timer   *time.Timer
	quit    chan struct{}
	owner   *FyneScheduler
}

func (t *fyneTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.quit != nil {
		close(t.quit)
	}
	t.owner.forget(t)
	return true
}

func (s *FyneScheduler) track(t *fyneTimer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.timers[t] = struct{}{}
	return true
}

func (s *FyneScheduler) forget(t *fyneTimer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, t)
}

func (s *FyneScheduler) After(d time.Duration, fn func()) Timer {
	t := &fyneTimer{owner: s}
	if !s.track(t) {
		t.stopped.Store(true)
		return t
	}
	t.timer = time.AfterFunc(d, func() {
		fyne.Do(func() {
			if t.stopped.Swap(true) {
				return
			}
			s.forget(t)
			fn()
		})
	})
	return t
}

func (s *FyneScheduler) Every(d time.Duration, fn func()) Timer {
	t := &fyneTimer{owner: s, quit: make(chan struct{})}
	if !s.track(t) {
		t.stopped.Store(true)
		close(t.quit)
		return t
	}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(func() {
					if !t.stopped.Load() {
						fn()
					}
				})
			case <-t.quit:
				return
			}
		}
	}()
	return t
}

func (s *FyneScheduler) Now() time.Time { return time.Now() }

// Shutdown cancels every pending timer and rejects new ones
func (s *FyneScheduler) Shutdown() {
	s.mu.Lock()
	s.closed = true
	pending := make([]*fyneTimer, 0, len(s.timers))
	for t := range s.timers {
		pending = append(pending, t)
	}
	s.mu.Unlock()

	for _, t := range pending {
		t.Stop()
	}
}

// ManualScheduler is a deterministic Scheduler driven by Advance
type ManualScheduler struct {
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at      time.Time
	every   time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (m *ManualScheduler) add(d, every time.Duration, fn func()) Timer {
	m.seq++
	t := &manualTask{at: m.now.Add(d), every: every, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

func (m *ManualScheduler) After(d time.Duration, fn func()) Timer { return m.add(d, 0, fn) }
func (m *ManualScheduler) Every(d time.Duration, fn func()) Timer { return m.add(d, d, fn) }
func (m *ManualScheduler) Now() time.Time                         { return m.now }

// Advance moves the clock forward by d, running every callback that falls
// due in time order. Callbacks may schedule or stop other callbacks.
func (m *ManualScheduler) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		m.compact()
		if len(m.tasks) == 0 {
			break
		}
		sort.SliceStable(m.tasks, func(i, j int) bool {
			if m.tasks[i].at.Equal(m.tasks[j].at) {
				return m.tasks[i].seq < m.tasks[j].seq
			}
			return m.tasks[i].at.Before(m.tasks[j].at)
		})
		next := m.tasks[0]
		if next.at.After(target) {
			break
		}
		m.now = next.at
		if next.every > 0 {
			next.at = next.at.Add(next.every)
		} else {
			next.stopped = true
		}
		next.fn()
	}
	m.now = target
}

func (m *ManualScheduler) compact() {
	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live
}

// Pending is the number of active timers
func (m *ManualScheduler) Pending() int {
	m.compact()
	return len(m.tasks)
}
