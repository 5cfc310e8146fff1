package audit

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryLog is an in-process Log for tests.
type MemoryLog struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (m *MemoryLog) Record(_ context.Context, evt Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	evt.ID = int64(len(m.events) + 1)
	evt.CreatedAt = time.Now().UTC()
	m.events = append(m.events, evt)
	return nil
}

func (m *MemoryLog) Count(_ context.Context, filter Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, evt := range m.events {
		if filter.matches(evt) {
			total++
		}
	}
	return total, nil
}

func (m *MemoryLog) List(_ context.Context, filter Filter, limit, offset int) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, 0)
	for _, evt := range slices.Backward(m.events) {
		if filter.matches(evt) {
			out = append(out, evt)
		}
	}
	if offset >= len(out) {
		return []Event{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
