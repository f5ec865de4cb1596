package events

import "log"

// LogListener writes every event to the standard logger
type LogListener struct{}

// NewLogListener creates a listener that logs events
func NewLogListener() *LogListener {
	return &LogListener{}
}

func (l *LogListener) HandleEvent(event Event) error {
	log.Printf("[EVENTS] %s", event)
	return nil
}

func (l *LogListener) Priority() int { return PriorityObserve }
func (l *LogListener) ID() string    { return "log" }

// ListenerFunc adapts a function into an EventListener
type ListenerFunc struct {
	Name     string
	Order    int
	Callback func(Event) error
}

func (f *ListenerFunc) HandleEvent(event Event) error { return f.Callback(event) }
func (f *ListenerFunc) Priority() int                 { return f.Order }
func (f *ListenerFunc) ID() string                    { return f.Name }
