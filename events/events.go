package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeLeaderboardPosted EventType = "leaderboard_posted"
	EventTypeModerationAction  EventType = "moderation_action"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// LeaderboardPostedEvent represents a leaderboard image that was posted
type LeaderboardPostedEvent struct {
	Week        int
	RequestedBy string
	ImagePath   string
}

func (e LeaderboardPostedEvent) Type() EventType {
	return EventTypeLeaderboardPosted
}

// ModerationActionEvent represents a moderation action that was carried out
type ModerationActionEvent struct {
	Action      string // "kick", "ban" or "timeout"
	TargetID    string
	ModeratorID string
	Reason      string
}

func (e ModerationActionEvent) Type() EventType {
	return EventTypeModerationAction
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Dispatch is
// synchronous; handlers that might block should offload themselves.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event")

	for _, handler := range handlers {
		handler(ctx, event)
	}
}
