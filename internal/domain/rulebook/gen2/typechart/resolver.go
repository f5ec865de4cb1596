package typechart

import (
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// Resolver answers attacking-type vs defending-type multipliers
type Resolver struct {
	chart map[pokemon.ElementType]map[pokemon.ElementType]float64
}

// NewResolver builds a resolver from chart entries. A nil slice uses DefaultChart.
func NewResolver(entries []Entry) *Resolver {
	if entries == nil {
		entries = DefaultChart()
	}

	chart := make(map[pokemon.ElementType]map[pokemon.ElementType]float64)
	for _, e := range entries {
		if chart[e.Attack] == nil {
			chart[e.Attack] = make(map[pokemon.ElementType]float64)
		}
		chart[e.Attack][e.Defend] = e.Multiplier
	}

	return &Resolver{chart: chart}
}

// Effectiveness returns the multiplier of an attack against a defender with
// one or two types. Names are normalized first; an empty second type is
// ignored and unknown types are neutral.
func (r *Resolver) Effectiveness(attackType, defType1, defType2 string) float64 {
	return r.EffectivenessOf(Normalize(attackType), Normalize(defType1), Normalize(defType2))
}

// EffectivenessOf is Effectiveness on already canonical types
func (r *Resolver) EffectivenessOf(attack, def1, def2 pokemon.ElementType) float64 {
	if attack == pokemon.TypeNone || def1 == pokemon.TypeNone {
		return 1.0
	}

	mult := r.lookup(attack, def1)
	if def2 != pokemon.TypeNone {
		mult *= r.lookup(attack, def2)
	}
	return mult
}

func (r *Resolver) lookup(attack, defend pokemon.ElementType) float64 {
	if row, ok := r.chart[attack]; ok {
		if mult, ok := row[defend]; ok {
			return mult
		}
	}
	return 1.0
}

// Message describes a multiplier for the battle log. Neutral hits have no message.
func Message(multiplier float64) string {
	switch {
	case multiplier == 0:
		return "It has no effect."
	case multiplier >= 4.0:
		return "It's super effective x4!"
	case multiplier >= 2.0:
		return "It's super effective!"
	case multiplier < 1.0:
		return "It's not very effective..."
	default:
		return ""
	}
}
