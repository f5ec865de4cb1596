package combatants

//go:generate mockgen -destination=mock/mock.go -package=mockcombatants -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// Repository persists combatant instances and their move slots
type Repository interface {
	// Create stores a new combatant
	Create(ctx context.Context, combatant *pokemon.Combatant) error

	// Get retrieves a combatant by ID
	Get(ctx context.Context, id string) (*pokemon.Combatant, error)

	// ListByOwner returns an owner's combatants ordered by team position.
	// An empty owner lists wild combatants.
	ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Combatant, error)

	// GetMoveSlots returns the persisted slots of a combatant ordered by position
	GetMoveSlots(ctx context.Context, combatantID string) ([]*pokemon.MoveSlot, error)

	// Commit writes every change in one all-or-nothing step. It fails with an
	// unavailable error when a combatant's stored version no longer matches
	// the version it was read at.
	Commit(ctx context.Context, changes *Changes) error
}

// Changes is one unit of work against the store
type Changes struct {
	// Combatants are written whole, carrying the Version they were read at
	Combatants []*pokemon.Combatant

	// MoveSlots replaces the full slot set of a combatant. Every key must
	// belong to a combatant listed in Combatants.
	MoveSlots map[string][]*pokemon.MoveSlot
}

// Add appends a combatant unless one with the same ID is already listed
func (c *Changes) Add(combatant *pokemon.Combatant) {
	for _, existing := range c.Combatants {
		if existing.ID == combatant.ID {
			return
		}
	}
	c.Combatants = append(c.Combatants, combatant)
}

// SetMoveSlots records the replacement slot set of a combatant
func (c *Changes) SetMoveSlots(combatantID string, slots []*pokemon.MoveSlot) {
	if c.MoveSlots == nil {
		c.MoveSlots = make(map[string][]*pokemon.MoveSlot)
	}
	c.MoveSlots[combatantID] = slots
}
