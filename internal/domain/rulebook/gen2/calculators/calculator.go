package calculators

import (
	"math"

	"github.com/KirkDiggler/pokebattle-bot/internal/dice"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

const (
	// CriticalMultiplier is folded into the type multiplier on a critical hit
	CriticalMultiplier = 2.0

	// SameTypeBonus applies when the move shares a type with its user
	SameTypeBonus = 1.5

	criticalSides = 16
	captureSides  = 256
	maxCatchValue = 255
)

// Calculator implements the Gold/Silver/Crystal battle formulas. Every
// random decision goes through the injected roller.
type Calculator struct {
	roller dice.Roller
}

// NewCalculator creates a calculator drawing from roller
func NewCalculator(roller dice.Roller) *Calculator {
	if roller == nil {
		panic("roller is required")
	}
	return &Calculator{roller: roller}
}

// RollsHit draws d100 against the move accuracy
func (c *Calculator) RollsHit(accuracy int) (bool, error) {
	return dice.Percent(c.roller, accuracy)
}

// RolledCritical reports a critical hit, a flat 1 in 16
func (c *Calculator) RolledCritical() (bool, error) {
	face, err := dice.Face(c.roller, criticalSides)
	if err != nil {
		return false, err
	}
	return face == criticalSides, nil
}

// DamageInput holds everything the damage formula reads
type DamageInput struct {
	Level   int
	Attack  int
	Defense int
	Power   int

	// Multiplier is type effectiveness, already multiplied by
	// CriticalMultiplier when the hit is critical
	Multiplier float64
	SameType   bool

	AttackerStatus pokemon.Status
	Physical       bool
}

// ComputeDamage returns the HP delta of one hit. The result is never
// negative and may be 0 for weak hits.
func ComputeDamage(in DamageInput) int {
	if in.Power <= 0 || in.Multiplier <= 0 {
		return 0
	}

	attack := max(in.Attack, 1)
	if in.Physical && in.AttackerStatus == pokemon.StatusBurned {
		attack = max(attack/2, 1)
	}
	defense := max(in.Defense, 1)
	level := max(in.Level, 1)

	base := (2*level/5+2)*in.Power*attack/defense/50 + 2

	damage := float64(base) * in.Multiplier
	if in.SameType {
		damage *= SameTypeBonus
	}

	return max(int(math.Floor(damage)), 0)
}

// CaptureInput holds everything the catch formula reads
type CaptureInput struct {
	MaxHP     int
	CurrentHP int
	CatchRate int
	BallBonus float64
	Status    pokemon.Status
}

// CatchValue is the modified catch rate in [1, 255]. A capture succeeds when
// a d256 roll does not exceed it.
func CatchValue(in CaptureInput) int {
	maxHP := max(in.MaxHP, 1)
	currentHP := min(max(in.CurrentHP, 0), maxHP)

	hpFactor := float64(3*maxHP - 2*currentHP)
	value := int(math.Floor(hpFactor * float64(in.CatchRate) * in.BallBonus / float64(3*maxHP)))
	value += statusCatchBonus(in.Status)

	return min(max(value, 1), maxCatchValue)
}

// ComputeCapture rolls a capture attempt. The guaranteed ball tier never
// rolls and never fails.
func (c *Calculator) ComputeCapture(in CaptureInput) (bool, error) {
	if in.BallBonus >= pokemon.GuaranteedCaptureBonus {
		return true, nil
	}

	face, err := dice.Face(c.roller, captureSides)
	if err != nil {
		return false, err
	}
	return face <= CatchValue(in), nil
}

// CaptureProbability is the exact chance ComputeCapture succeeds
func CaptureProbability(in CaptureInput) float64 {
	if in.BallBonus >= pokemon.GuaranteedCaptureBonus {
		return 1
	}
	return float64(CatchValue(in)) / captureSides
}

func statusCatchBonus(status pokemon.Status) int {
	switch status {
	case pokemon.StatusAsleep, pokemon.StatusFrozen:
		return 10
	case pokemon.StatusParalyzed:
		return 5
	default:
		return 0
	}
}
