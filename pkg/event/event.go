// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GliderAdded   Type = "glider_added"
	GliderRemoved Type = "glider_removed"
	StallEntered  Type = "stall_entered"
	StallExited   Type = "stall_exited"
	WingsChanged  Type = "wings_changed"
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

// Specific event implementations

// GliderEvent contains information about glider lifecycle events
type GliderEvent struct {
	BaseEvent
	GliderID uint64
	Name     string
}

// NewGliderEvent creates a new glider lifecycle event
func NewGliderEvent(eventType Type, source interface{}, gliderID uint64, name string) *GliderEvent {
	return &GliderEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		GliderID: gliderID,
		Name:     name,
	}
}

// StallEvent is published when a glider crosses the stall-speed threshold
type StallEvent struct {
	BaseEvent
	GliderID uint64
	Airspeed float64
}

// NewStallEvent creates a new stall transition event
func NewStallEvent(eventType Type, source interface{}, gliderID uint64, airspeed float64) *StallEvent {
	return &StallEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		GliderID: gliderID,
		Airspeed: airspeed,
	}
}

// WingsEvent is published when a glider's wing exposure changes
type WingsEvent struct {
	BaseEvent
	GliderID      uint64
	LeftExposure  float64
	RightExposure float64
}

// NewWingsEvent creates a new wing exposure event
func NewWingsEvent(source interface{}, gliderID uint64, left, right float64) *WingsEvent {
	return &WingsEvent{
		BaseEvent: BaseEvent{
			EventType: WingsChanged,
			Source:    source,
		},
		GliderID:      gliderID,
		LeftExposure:  left,
		RightExposure: right,
	}
}
