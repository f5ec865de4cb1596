package events

// Event type constants
const (
	EventTypeTurnResolved      EventType = "turn_resolved"
	EventTypeCombatantFainted  EventType = "combatant_fainted"
	EventTypeCombatantCaptured EventType = "combatant_captured"
	EventTypeStarterChosen     EventType = "starter_chosen"
)

// AllEventTypes lists every event the services emit
var AllEventTypes = []EventType{
	EventTypeTurnResolved,
	EventTypeCombatantFainted,
	EventTypeCombatantCaptured,
	EventTypeStarterChosen,
}

// Priority levels for listener order
const (
	PriorityRecord  = 0   // Persist or count first
	PriorityNotify  = 100 // Tell players
	PriorityObserve = 500 // Logging
)
