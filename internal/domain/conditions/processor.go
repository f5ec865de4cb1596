package conditions

import (
	"log"
	"strings"

	"github.com/KirkDiggler/pokebattle-bot/internal/dice"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/rulebook/gen2/calculators"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

const (
	thawSides      = 10 // 10% per check
	paralysisSides = 4  // 25% per check
	confusionSides = 2  // 50% per check

	maxSleepTurns     = 3
	minConfusionTurns = 2
	maxConfusionTurns = 5
)

// Processor runs the status state machine: the pre-turn gate and the
// end-of-turn residual damage. It mutates the combatant it is given and
// never persists anything.
type Processor struct {
	roller dice.Roller
}

// NewProcessor creates a status processor drawing from roller
func NewProcessor(roller dice.Roller) *Processor {
	if roller == nil {
		panic("roller is required")
	}
	return &Processor{roller: roller}
}

// CheckPreTurn decides whether the combatant may act this turn. Frozen and
// asleep combatants that stay that way are blocked before confusion is
// considered; a paralysis that lets the move through still leaves the
// confusion check to run.
func (p *Processor) CheckPreTurn(c *pokemon.Combatant) (*GateResult, error) {
	if c == nil {
		return nil, apperr.InvalidArgument("combatant is required")
	}

	result := &GateResult{}

	switch c.Status {
	case pokemon.StatusFrozen:
		thawed, err := dice.OneIn(p.roller, thawSides)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to roll thaw")
		}
		if !thawed {
			result.Blocked = true
			result.Messages = append(result.Messages, MessageFrozen)
			return result, nil
		}
		c.SetStatus(pokemon.StatusHealthy)
		result.Messages = append(result.Messages, MessageThawed)
		log.Printf("[CONDITIONS] %s thawed", c.ID)

	case pokemon.StatusAsleep:
		if c.Volatile.SleepTurns > 0 {
			c.Volatile.SleepTurns--
			result.Blocked = true
			result.Messages = append(result.Messages, MessageSleeping)
			return result, nil
		}
		c.SetStatus(pokemon.StatusHealthy)
		result.Messages = append(result.Messages, MessageWokeUp)
		log.Printf("[CONDITIONS] %s woke up", c.ID)

	case pokemon.StatusParalyzed:
		stuck, err := dice.OneIn(p.roller, paralysisSides)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to roll paralysis")
		}
		if stuck {
			result.Blocked = true
			result.Messages = append(result.Messages, MessageParalyzed)
			return result, nil
		}
	}

	if c.Volatile.ConfusionTurns > 0 {
		c.Volatile.ConfusionTurns--

		selfHit, err := dice.OneIn(p.roller, confusionSides)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to roll confusion")
		}
		if selfHit {
			damage := calculators.ComputeDamage(calculators.DamageInput{
				Level:      c.Level,
				Attack:     c.Stats.Attack,
				Defense:    c.Stats.Defense,
				Power:      ConfusionSelfHitPower,
				Multiplier: 1.0,
			})
			result.SelfDamage = c.ApplyDamage(damage)
			result.Blocked = true
			result.Messages = append(result.Messages, MessageConfusedSelf)
			return result, nil
		}
		if c.Volatile.ConfusionTurns == 0 {
			result.Messages = append(result.Messages, MessageSnappedOut)
		}
	}

	return result, nil
}

// ApplyResidual deals the end-of-turn damage of the combatant's status and
// drain flag, and returns one message per effect. Every residual hit is at
// least 1 HP.
func (p *Processor) ApplyResidual(c *pokemon.Combatant) []string {
	if c == nil || c.IsFainted() {
		return nil
	}

	var messages []string
	damage := 0

	effect := GetStandardEffects(c.Status)
	switch {
	case effect.Escalates:
		c.Volatile.ToxicCounter++
		damage += max(1, c.MaxHP*c.Volatile.ToxicCounter/toxicDivisor)
		messages = append(messages, effect.ResidualMessage)
	case effect.ResidualDivisor > 0:
		damage += max(1, c.MaxHP/effect.ResidualDivisor)
		messages = append(messages, effect.ResidualMessage)
	}

	if c.Volatile.Drained {
		damage += max(1, c.MaxHP/drainDivisor)
		messages = append(messages, MessageDrainResidual)
	}

	if damage > 0 {
		lost := c.ApplyDamage(damage)
		log.Printf("[CONDITIONS] %s lost %d HP to residual effects (%s)", c.ID, lost, c.Status)
	}

	return messages
}

// Inflict gives a healthy combatant a persistent status. It reports false
// when the combatant already carries one, since statuses never stack.
// Sleep lasts 1 to 3 turns.
func (p *Processor) Inflict(c *pokemon.Combatant, status pokemon.Status) (bool, error) {
	if c == nil {
		return false, apperr.InvalidArgument("combatant is required")
	}
	if !status.IsValid() {
		return false, apperr.InvalidArgumentf("unknown status %q", status)
	}
	if c.Status != pokemon.StatusHealthy && c.Status != "" {
		return false, nil
	}

	if status == pokemon.StatusAsleep {
		turns, err := dice.Face(p.roller, maxSleepTurns)
		if err != nil {
			return false, apperr.Wrap(err, "failed to roll sleep turns")
		}
		c.SetStatus(status)
		c.Volatile.SleepTurns = turns
		return true, nil
	}

	c.SetStatus(status)
	return true, nil
}

// Confuse starts a 2 to 5 turn confusion. An already confused combatant is
// left alone.
func (p *Processor) Confuse(c *pokemon.Combatant) (bool, error) {
	if c == nil {
		return false, apperr.InvalidArgument("combatant is required")
	}
	if c.Volatile.ConfusionTurns > 0 {
		return false, nil
	}

	turns, err := dice.Face(p.roller, maxConfusionTurns-minConfusionTurns+1)
	if err != nil {
		return false, apperr.Wrap(err, "failed to roll confusion turns")
	}
	c.Volatile.ConfusionTurns = turns + minConfusionTurns - 1
	return true, nil
}

func joinMessages(messages []string) string {
	return strings.Join(messages, " ")
}
