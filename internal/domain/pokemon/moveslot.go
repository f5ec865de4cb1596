package pokemon

// MaxMoveSlots is how many moves a combatant can have active at once
const MaxMoveSlots = 4

// MoveSlot tracks remaining uses of one move for one combatant
type MoveSlot struct {
	CombatantID string `json:"combatant_id"`
	MoveID      int    `json:"move_id"`
	CurrentPP   int    `json:"current_pp"`
	MaxPP       int    `json:"max_pp"`
	Position    int    `json:"position"`
}

// Clone returns a copy safe to mutate independently
func (s *MoveSlot) Clone() *MoveSlot {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
