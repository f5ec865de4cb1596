package testutils

import (
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// CreateTestCombatant creates a healthy level 5 combatant at full HP.
// An empty owner makes it wild.
func CreateTestCombatant(id, ownerID string, speciesID int) *pokemon.Combatant {
	return &pokemon.Combatant{
		ID:        id,
		OwnerID:   ownerID,
		SpeciesID: speciesID,
		Level:     5,
		CurrentHP: 40,
		MaxHP:     40,
		Stats: pokemon.Stats{
			Attack:         50,
			Defense:        50,
			SpecialAttack:  50,
			SpecialDefense: 50,
			Speed:          50,
		},
		Status: pokemon.StatusHealthy,
	}
}

// CreateTestMoveSlots creates full-PP slots for the given moves in order
func CreateTestMoveSlots(combatantID string, maxPP int, moveIDs ...int) []*pokemon.MoveSlot {
	slots := make([]*pokemon.MoveSlot, len(moveIDs))
	for i, id := range moveIDs {
		slots[i] = &pokemon.MoveSlot{
			CombatantID: combatantID,
			MoveID:      id,
			CurrentPP:   maxPP,
			MaxPP:       maxPP,
			Position:    i,
		}
	}
	return slots
}
