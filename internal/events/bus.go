package events

import (
	"fmt"
	"sync"
	"time"

	"play-and-learn/internal/logger"
)

// Type names a gameplay event
type Type string

const (
	GameStarted     Type = "game.started"
	GameFinished    Type = "game.finished"
	ShapeMatched    Type = "shape.matched"
	ShapeMismatched Type = "shape.mismatched"
	BoardCompleted  Type = "board.completed"
	AnswerCorrect   Type = "answer.correct"
	AnswerWrong     Type = "answer.wrong"
	SettingsChanged Type = "settings.changed"
)

// AllTypes lists every event type
func AllTypes() []Type {
	return []Type{
		GameStarted, GameFinished, ShapeMatched, ShapeMismatched,
		BoardCompleted, AnswerCorrect, AnswerWrong, SettingsChanged,
	}
}

type Event struct {
	Type      Type
	Timestamp time.Time
	SessionID string
	Data      map[string]interface{}
}

type Handler interface {
	Handle(event Event)
	GetID() string
}

// Bus delivers events on a single worker goroutine, in publish order.
// Publishing never blocks: when the buffer is full the event is dropped.
type Bus struct {
	subscribers map[Type][]Handler
	mu          sync.RWMutex
	buffer      chan Event
	closed      bool
	dropped     int
	logger      logger.Logger
	wg          sync.WaitGroup
}

func NewBus(bufferSize int, log logger.Logger) *Bus {
	bus := &Bus{
		subscribers: make(map[Type][]Handler),
		buffer:      make(chan Event, bufferSize),
		logger:      log,
	}

	bus.startWorker()
	return bus
}

// Publish queues the event and reports whether it was accepted
func (b *Bus) Publish(event Event) bool {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	select {
	case b.buffer <- event:
		return true
	default:
		b.dropped++
		return false
	}
}

// Dropped is the number of events lost to a full buffer
func (b *Bus) Dropped() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped
}

func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// SubscribeAll registers handler for each of the given types
func (b *Bus) SubscribeAll(handler Handler, types ...Type) {
	for _, t := range types {
		b.Subscribe(t, handler)
	}
}

func (b *Bus) Unsubscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.subscribers[eventType]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			b.subscribers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Shutdown stops accepting events, delivers what is queued and waits for the worker.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.buffer)
	b.mu.Unlock()

	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for event := range b.buffer {
			b.dispatchEvent(event)
		}
	}()
}

func (b *Bus) dispatchEvent(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[event.Type]))
	copy(handlers, b.subscribers[event.Type])
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.deliver(handler, event)
	}
}

func (b *Bus) deliver(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus", fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"handler": h.GetID(),
				"event":   string(event.Type),
			})
		}
	}()
	h.Handle(event)
}
