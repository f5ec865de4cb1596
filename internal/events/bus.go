package events

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := append(b.listeners[eventType], listener)
	slices.SortStableFunc(list, func(x, y EventListener) int {
		return x.Priority() - y.Priority()
	})
	b.listeners[eventType] = list
}

// SubscribeAll adds a listener for every event type the services emit
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, eventType := range AllEventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = slices.DeleteFunc(b.listeners[eventType], func(l EventListener) bool {
		return l.ID() == listenerID
	})
}

// Emit sends an event to all registered listeners in priority order. Every
// listener runs even when an earlier one fails; the failures are joined.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	var errs []error
	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			errs = append(errs, fmt.Errorf("listener %s failed: %w", listener.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// Publish emits on a bus that may be nil and logs listener failures. The
// services use it after their changes are saved, when failing is too late.
func Publish(b *Bus, event Event) {
	if b == nil {
		return
	}
	if err := b.Emit(event); err != nil {
		log.Printf("[EVENTS] %s: %v", event.GetType(), err)
	}
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
}
