package conditions

import "github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"

// Effect describes what a persistent status does to its holder
type Effect struct {
	// MayBlock means the status can cancel the holder's move at the pre-turn gate
	MayBlock bool

	// ResidualDivisor is the fraction of max HP lost each turn (1/n); 0 for none
	ResidualDivisor int

	// Escalates replaces the flat residual with counter/16 of max HP,
	// growing every turn the status is kept
	Escalates bool

	// ResidualMessage is reported when the residual lands
	ResidualMessage string
}

// Gate outcomes and residual messages
const (
	MessageThawed       = "thawed out!"
	MessageFrozen       = "is frozen solid!"
	MessageSleeping     = "is fast asleep."
	MessageWokeUp       = "woke up!"
	MessageParalyzed    = "is fully paralyzed!"
	MessageConfusedSelf = "hurt itself in its confusion!"
	MessageSnappedOut   = "snapped out of confusion!"

	MessageBurnResidual   = "is hurt by its burn."
	MessagePoisonResidual = "is hurt by poison."
	MessageToxicResidual  = "is badly hurt by poison."
	MessageDrainResidual  = "has its health sapped."
)

const (
	// ConfusionSelfHitPower is the power of the typeless blow a confused
	// combatant deals to itself
	ConfusionSelfHitPower = 40

	toxicDivisor = 16
	drainDivisor = 8
)

// GetStandardEffects returns the effects of a persistent status
func GetStandardEffects(status pokemon.Status) *Effect {
	effects := map[pokemon.Status]*Effect{
		pokemon.StatusBurned: {
			ResidualDivisor: 8,
			ResidualMessage: MessageBurnResidual,
		},
		pokemon.StatusPoisoned: {
			ResidualDivisor: 8,
			ResidualMessage: MessagePoisonResidual,
		},
		pokemon.StatusBadlyPoisoned: {
			Escalates:       true,
			ResidualMessage: MessageToxicResidual,
		},
		pokemon.StatusAsleep: {
			MayBlock: true,
		},
		pokemon.StatusParalyzed: {
			MayBlock: true,
		},
		pokemon.StatusFrozen: {
			MayBlock: true,
		},
	}

	if effect, exists := effects[status]; exists {
		return effect
	}
	return &Effect{} // Healthy and unknown statuses do nothing
}

// GateResult is the outcome of the pre-turn check
type GateResult struct {
	// Blocked means the combatant does not act this turn
	Blocked bool

	// Messages describe every transition that happened, in order
	Messages []string

	// SelfDamage is the HP lost to a confused self-hit
	SelfDamage int
}

// Message joins the gate messages into one line
func (g *GateResult) Message() string {
	return joinMessages(g.Messages)
}
