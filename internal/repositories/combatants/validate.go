package combatants

import (
	"sort"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

func validateCombatant(combatant *pokemon.Combatant) error {
	if combatant == nil {
		return apperr.InvalidArgument("combatant cannot be nil")
	}
	if combatant.ID == "" {
		return apperr.InvalidArgument("combatant ID is required")
	}
	if combatant.CurrentHP < 0 || combatant.CurrentHP > combatant.MaxHP {
		return apperr.InvalidArgumentf("combatant %s HP %d outside [0, %d]", combatant.ID, combatant.CurrentHP, combatant.MaxHP).
			WithMeta("combatant_id", combatant.ID)
	}
	return nil
}

func validateChanges(changes *Changes) error {
	if changes == nil {
		return apperr.InvalidArgument("changes cannot be nil")
	}

	listed := make(map[string]bool, len(changes.Combatants))
	for _, c := range changes.Combatants {
		if err := validateCombatant(c); err != nil {
			return err
		}
		if listed[c.ID] {
			return apperr.InvalidArgumentf("combatant %s listed twice", c.ID)
		}
		listed[c.ID] = true
	}

	for id, slots := range changes.MoveSlots {
		if !listed[id] {
			return apperr.InvalidArgumentf("move slots for %s without its combatant", id).
				WithMeta("combatant_id", id)
		}
		if len(slots) > pokemon.MaxMoveSlots {
			return apperr.InvalidArgumentf("combatant %s has %d move slots", id, len(slots))
		}
		for _, slot := range slots {
			if slot == nil || slot.CombatantID != id {
				return apperr.InvalidArgumentf("move slot does not belong to %s", id)
			}
		}
	}

	return nil
}

func sortedSlotOwners(slots map[string][]*pokemon.MoveSlot) []string {
	ids := make([]string, 0, len(slots))
	for id := range slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortByTeamPosition(list []*pokemon.Combatant) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].TeamPosition != list[j].TeamPosition {
			return list[i].TeamPosition < list[j].TeamPosition
		}
		return list[i].ID < list[j].ID
	})
}

func sortByPosition(slots []*pokemon.MoveSlot) {
	sort.Slice(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })
}

func cloneSlots(slots []*pokemon.MoveSlot) []*pokemon.MoveSlot {
	out := make([]*pokemon.MoveSlot, len(slots))
	for i, s := range slots {
		out[i] = s.Clone()
	}
	return out
}
