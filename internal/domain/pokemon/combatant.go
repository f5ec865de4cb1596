package pokemon

// TeamSize is the number of fixed team positions a trainer has
const TeamSize = 6

// Combatant is one concrete creature instance, owned by a trainer or wild
type Combatant struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"owner_id"` // empty for wild
	SpeciesID    int      `json:"species_id"`
	Level        int      `json:"level"`
	Experience   int      `json:"experience"`
	CurrentHP    int      `json:"current_hp"`
	MaxHP        int      `json:"max_hp"`
	Stats        Stats    `json:"stats"`
	Status       Status   `json:"status"`
	Volatile     Volatile `json:"volatile"`
	TeamPosition int      `json:"team_position"`

	// Version is bumped on every successful save
	Version int64 `json:"version"`
}

// IsWild reports whether nobody owns the combatant
func (c *Combatant) IsWild() bool {
	return c.OwnerID == ""
}

// IsFainted reports whether HP reached zero
func (c *Combatant) IsFainted() bool {
	return c.CurrentHP <= 0
}

// ApplyDamage subtracts amount from HP, clamped to [0, MaxHP], and returns
// the HP actually lost.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.CurrentHP
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
	return before - c.CurrentHP
}

// SetStatus replaces the persistent status. Leaving bad poison resets the
// toxic counter and leaving sleep clears the sleep countdown.
func (c *Combatant) SetStatus(status Status) {
	if c.Status == StatusBadlyPoisoned && status != StatusBadlyPoisoned {
		c.Volatile.ToxicCounter = 0
	}
	if status != StatusAsleep {
		c.Volatile.SleepTurns = 0
	}
	c.Status = status
}

// Clone returns a copy safe to mutate independently
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
