package combatants

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the combatant repository.
// Commits are serialized by a single mutex.
type InMemoryRepository struct {
	mu         sync.RWMutex
	combatants map[string]*pokemon.Combatant
	moveSlots  map[string][]*pokemon.MoveSlot
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		combatants: make(map[string]*pokemon.Combatant),
		moveSlots:  make(map[string][]*pokemon.MoveSlot),
	}
}

// Create stores a new combatant
func (r *InMemoryRepository) Create(ctx context.Context, combatant *pokemon.Combatant) error {
	if err := validateCombatant(combatant); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.combatants[combatant.ID]; exists {
		return apperr.AlreadyExistsf("combatant with ID '%s' already exists", combatant.ID).
			WithMeta("combatant_id", combatant.ID)
	}

	if combatant.Version == 0 {
		combatant.Version = 1
	}
	r.combatants[combatant.ID] = combatant.Clone()

	return nil
}

// Get retrieves a combatant by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*pokemon.Combatant, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("combatant ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	combatant, exists := r.combatants[id]
	if !exists {
		return nil, apperr.NotFoundf("combatant '%s' not found", id).
			WithMeta("combatant_id", id)
	}

	return combatant.Clone(), nil
}

// ListByOwner returns an owner's combatants ordered by team position
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Combatant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*pokemon.Combatant
	for _, c := range r.combatants {
		if c.OwnerID == ownerID {
			result = append(result, c.Clone())
		}
	}
	sortByTeamPosition(result)

	return result, nil
}

// GetMoveSlots returns the persisted slots of a combatant
func (r *InMemoryRepository) GetMoveSlots(ctx context.Context, combatantID string) ([]*pokemon.MoveSlot, error) {
	if combatantID == "" {
		return nil, apperr.InvalidArgument("combatant ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	slots := cloneSlots(r.moveSlots[combatantID])
	sortByPosition(slots)
	return slots, nil
}

// Commit applies all changes or none of them
func (r *InMemoryRepository) Commit(ctx context.Context, changes *Changes) error {
	if err := validateChanges(changes); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range changes.Combatants {
		stored, exists := r.combatants[c.ID]
		if !exists {
			return apperr.NotFoundf("combatant '%s' not found", c.ID).
				WithMeta("combatant_id", c.ID)
		}
		if stored.Version != c.Version {
			return errVersionConflict(c.ID, stored.Version, c.Version)
		}
	}

	for _, c := range changes.Combatants {
		c.Version++
		r.combatants[c.ID] = c.Clone()
	}
	for id, slots := range changes.MoveSlots {
		r.moveSlots[id] = cloneSlots(slots)
	}

	return nil
}

func errVersionConflict(id string, stored, expected int64) error {
	return apperr.Unavailable("combatant modified concurrently").
		WithMeta("combatant_id", id).
		WithMeta("stored_version", stored).
		WithMeta("expected_version", expected)
}
