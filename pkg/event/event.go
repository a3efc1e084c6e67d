// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	SessionStarted Type = "session_started"
	SessionEnded   Type = "session_ended"
	// BoostEngaged fires on the rising edge of boost input. The host's
	// haptics collaborator subscribes to it to emit a short pulse; the
	// core keeps no haptic state.
	BoostEngaged Type = "boost_engaged"
	// CraftReset fires when the craft is returned to its spawn pose.
	CraftReset Type = "craft_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// CraftEvent contains information about craft-related events
type CraftEvent struct {
	BaseEvent
	CraftID uint64
	Tick    uint64
}

// NewCraftEvent creates a new craft event
func NewCraftEvent(eventType Type, source interface{}, craftID, tick uint64) *CraftEvent {
	return &CraftEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		CraftID: craftID,
		Tick:    tick,
	}
}
