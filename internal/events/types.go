package events

import "fmt"

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType

	// GetTrainerID is the trainer whose action caused the event, empty for
	// the world
	GetTrainerID() string

	String() string
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	TrainerID string
}

func (e *BaseEvent) GetType() EventType   { return e.Type }
func (e *BaseEvent) GetTrainerID() string { return e.TrainerID }

// TurnResolvedEvent is emitted once a turn has been saved
type TurnResolvedEvent struct {
	BaseEvent
	AttackerID string
	DefenderID string
	MoveName   string
	Damage     int
	Critical   bool
	Missed     bool
	Blocked    bool
}

func (e *TurnResolvedEvent) String() string {
	return fmt.Sprintf("%s: %s used %q on %s for %d (crit=%t missed=%t blocked=%t)",
		e.Type, e.AttackerID, e.MoveName, e.DefenderID, e.Damage, e.Critical, e.Missed, e.Blocked)
}

// CombatantFaintedEvent is emitted for every combatant a turn knocked out
type CombatantFaintedEvent struct {
	BaseEvent
	CombatantID string
	OpponentID  string
}

func (e *CombatantFaintedEvent) String() string {
	return fmt.Sprintf("%s: %s fainted facing %s", e.Type, e.CombatantID, e.OpponentID)
}

// CombatantCapturedEvent is emitted when a wild combatant joins a trainer
type CombatantCapturedEvent struct {
	BaseEvent
	CombatantID  string
	ItemKey      string
	TeamPosition int
}

func (e *CombatantCapturedEvent) String() string {
	return fmt.Sprintf("%s: %s caught %s with %s into position %d",
		e.Type, e.TrainerID, e.CombatantID, e.ItemKey, e.TeamPosition)
}

// StarterChosenEvent is emitted when a trainer receives their first combatant
type StarterChosenEvent struct {
	BaseEvent
	CombatantID string
	SpeciesID   int
}

func (e *StarterChosenEvent) String() string {
	return fmt.Sprintf("%s: %s chose species %d (%s)", e.Type, e.TrainerID, e.SpeciesID, e.CombatantID)
}
