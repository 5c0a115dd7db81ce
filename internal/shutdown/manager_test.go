package shutdown

import (
	"sync"
	"testing"
	"time"

	"play-and-learn/internal/logger"
)

func TestManager_ReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop{})
	var mu sync.Mutex
	var order []string
	for _, name := range []string{"audio", "bus", "scheduler"} {
		m.Register(name, Func(func() {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}))
	}

	m.Shutdown()
	m.Shutdown()

	want := []string{"scheduler", "bus", "audio"}
	if len(order) != len(want) {
		t.Fatalf("order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d = %s, want %s", i, order[i], want[i])
		}
	}
	select {
	case <-m.Done():
	default:
		t.Error("Done not closed")
	}
	if m.Context().Err() == nil {
		t.Error("context not cancelled")
	}
}

func TestManager_Timeout(t *testing.T) {
	m := NewManager(logger.Nop{})
	m.SetTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	after := false
	m.Register("after", Func(func() { after = true }))
	m.Register("stuck", Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()
	if time.Since(start) > 2*time.Second {
		t.Error("stuck component blocked shutdown")
	}
	if !after {
		t.Error("components after a stuck one must still stop")
	}
}
