package progress

import (
	"log/slog"
	"sync"

	"reel_fetcher/internal/domain"
)

// Subscriber receives every event published for a session after the
// moment it registered. Events are delivered synchronously on the
// publisher's goroutine, in registration order.
type Subscriber func(domain.ProgressEvent)

// Bus routes pipeline progress events to session-scoped subscribers.
// It is an explicit, injectable instance and is safe for concurrent
// publish, subscribe and unsubscribe from independent runs. Events are
// not buffered: a subscriber registered after a publish never sees that
// event.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string][]subscription
	logger *slog.Logger
}

type subscription struct {
	id uint64
	fn Subscriber
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[string][]subscription),
		logger: logger.With("component", "progress_bus"),
	}
}

// Subscribe registers fn for all future events on sessionID and returns
// the function that removes exactly this registration. Unsubscribing
// twice is a no-op. Unsubscribing does not stop the underlying run.
func (b *Bus) Subscribe(sessionID string, fn Subscriber) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[sessionID] = append(b.subs[sessionID], subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		remaining := b.subs[sessionID][:0]
		for _, sub := range b.subs[sessionID] {
			if sub.id != id {
				remaining = append(remaining, sub)
			}
		}
		if len(remaining) == 0 {
			delete(b.subs, sessionID)
		} else {
			b.subs[sessionID] = remaining
		}
	}
}

// Publish delivers event to every subscriber currently registered for
// sessionID, in registration order. A panicking subscriber does not
// prevent delivery to the rest.
func (b *Bus) Publish(sessionID string, event domain.ProgressEvent) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.subs[sessionID]))
	copy(snapshot, b.subs[sessionID])
	b.mu.Unlock()

	for _, sub := range snapshot {
		b.deliver(sessionID, sub, event)
	}
}

func (b *Bus) deliver(sessionID string, sub subscription, event domain.ProgressEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("subscriber panicked",
				"session_id", sessionID,
				"subscriber_id", sub.id,
				"panic", r,
			)
		}
	}()
	sub.fn(event)
}
