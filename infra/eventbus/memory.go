// Package eventbus provides the in-memory event bus used by the
// single-process harvest tracker.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thevuong/harvest/pkg/domain"
	"github.com/thevuong/harvest/pkg/eventbus"
)

// MemoryEventBus is a simple in-memory implementation of eventbus.Bus.
// Handlers run synchronously on the emitting goroutine, after the
// transaction that triggered the event has committed.
type MemoryEventBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]eventbus.HandlerFunc
	logger   *slog.Logger

	published []domain.Event // retained for test assertions
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[string]map[int]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// Register adds a handler for a specific event type and returns its
// deregistration function. Deregistering twice is harmless.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]eventbus.HandlerFunc)
	}
	id := b.nextID
	b.nextID++
	b.handlers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

// Emit dispatches the event to all handlers registered for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, event domain.Event) error {
	eventType := event.Type()

	b.mu.Lock()
	b.published = append(b.published, event)
	handlers := make([]eventbus.HandlerFunc, 0, len(b.handlers[eventType]))
	for _, h := range b.handlers[eventType] {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	b.logger.Debug("emitting event", "event_type", eventType, "handlers", len(handlers))
	for _, handler := range handlers {
		handler(ctx, event)
	}
	return nil
}

// Published returns the events emitted so far. This is useful for testing.
func (b *MemoryEventBus) Published() []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Event, len(b.published))
	copy(out, b.published)
	return out
}

// ClearPublished clears the recorded events. This is useful for testing.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

// Ensure MemoryEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryEventBus)(nil)
