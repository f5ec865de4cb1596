package moveset

import (
	"fmt"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// ActiveMove pairs a move with the slot tracking its remaining uses
type ActiveMove struct {
	Move *pokemon.Move
	Slot *pokemon.MoveSlot
}

// Spend uses one PP and returns what is left
func (m *ActiveMove) Spend() int {
	if m.Slot.CurrentPP > 0 {
		m.Slot.CurrentPP--
	}
	return m.Slot.CurrentPP
}

// PPMessage reports the remaining uses, e.g. "Ember: 24/25 PP left."
func (m *ActiveMove) PPMessage() string {
	return fmt.Sprintf("%s: %d/%d PP left.", pokemon.DisplayName(m.Move.Name), m.Slot.CurrentPP, m.Slot.MaxPP)
}

// ActiveSet is the reconciled move list of one combatant
type ActiveSet struct {
	CombatantID string
	Moves       []*ActiveMove

	// Changed is set when the reconciled slots differ from the persisted ones
	Changed bool
}

// Slots returns the slot rows to persist, in position order
func (s *ActiveSet) Slots() []*pokemon.MoveSlot {
	slots := make([]*pokemon.MoveSlot, len(s.Moves))
	for i, m := range s.Moves {
		slots[i] = m.Slot
	}
	return slots
}

// Find returns the active move with the given id. Moves outside the active
// set and moves with no PP left are rejected.
func (s *ActiveSet) Find(moveID int) (*ActiveMove, error) {
	for _, m := range s.Moves {
		if m.Move.ID != moveID {
			continue
		}
		if m.Slot.CurrentPP <= 0 {
			return nil, apperr.FailedPreconditionf("%s has no PP left", m.Move.Name).
				WithMeta("combatant_id", s.CombatantID).
				WithMeta("move_id", moveID)
		}
		return m, nil
	}

	return nil, apperr.InvalidArgumentf("move %d is not one of this pokemon's active moves", moveID).
		WithMeta("combatant_id", s.CombatantID).
		WithMeta("move_id", moveID)
}

// FirstUsable returns the first move in slot order that still has PP
func (s *ActiveSet) FirstUsable() (*ActiveMove, error) {
	for _, m := range s.Moves {
		if m.Slot.CurrentPP > 0 {
			return m, nil
		}
	}
	return nil, apperr.FailedPrecondition("no moves with PP left").
		WithMeta("combatant_id", s.CombatantID)
}

// reconcile lines the chosen moves up against the persisted slots. Existing
// slots keep their PP clamped to the move's max, new moves start full and
// slots for moves no longer chosen are dropped.
func reconcile(combatantID string, moves []*pokemon.Move, persisted []*pokemon.MoveSlot) *ActiveSet {
	existing := make(map[int]*pokemon.MoveSlot, len(persisted))
	for _, slot := range persisted {
		existing[slot.MoveID] = slot
	}

	set := &ActiveSet{
		CombatantID: combatantID,
		Moves:       make([]*ActiveMove, 0, len(moves)),
		Changed:     len(moves) != len(persisted),
	}

	for i, move := range moves {
		maxPP := max(move.PP, 1)
		slot := &pokemon.MoveSlot{
			CombatantID: combatantID,
			MoveID:      move.ID,
			CurrentPP:   maxPP,
			MaxPP:       maxPP,
			Position:    i,
		}

		if old, ok := existing[move.ID]; ok {
			slot.CurrentPP = min(max(old.CurrentPP, 0), maxPP)
			if slot.CurrentPP != old.CurrentPP || old.MaxPP != maxPP || old.Position != i {
				set.Changed = true
			}
		} else {
			set.Changed = true
		}

		set.Moves = append(set.Moves, &ActiveMove{Move: move, Slot: slot})
	}

	return set
}
