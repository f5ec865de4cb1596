package typechart

import (
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// Entry is one attacking→defending relationship of the chart. Pairs that
// are not listed are neutral.
type Entry struct {
	Attack     pokemon.ElementType
	Defend     pokemon.ElementType
	Multiplier float64
}

const (
	immune = 0.0
	resist = 0.5
	strong = 2.0
)

// DefaultChart returns the Gold/Silver/Crystal effectiveness chart
func DefaultChart() []Entry {
	const (
		normal   = pokemon.TypeNormal
		fire     = pokemon.TypeFire
		water    = pokemon.TypeWater
		grass    = pokemon.TypeGrass
		electric = pokemon.TypeElectric
		ice      = pokemon.TypeIce
		fighting = pokemon.TypeFighting
		poison   = pokemon.TypePoison
		ground   = pokemon.TypeGround
		flying   = pokemon.TypeFlying
		psychic  = pokemon.TypePsychic
		bug      = pokemon.TypeBug
		rock     = pokemon.TypeRock
		ghost    = pokemon.TypeGhost
		dragon   = pokemon.TypeDragon
		dark     = pokemon.TypeDark
		steel    = pokemon.TypeSteel
	)

	return []Entry{
		// Immunities
		{electric, ground, immune},
		{normal, ghost, immune},
		{ghost, normal, immune},
		{fighting, ghost, immune},
		{ground, flying, immune},
		{poison, steel, immune},
		{psychic, dark, immune},

		// Super effective
		{fire, grass, strong},
		{fire, ice, strong},
		{fire, bug, strong},
		{fire, steel, strong},
		{steel, ice, strong},
		{steel, rock, strong},
		{flying, grass, strong},
		{flying, fighting, strong},
		{flying, bug, strong},
		{water, fire, strong},
		{water, ground, strong},
		{water, rock, strong},
		{ice, grass, strong},
		{ice, ground, strong},
		{ice, flying, strong},
		{ice, dragon, strong},
		{grass, water, strong},
		{grass, ground, strong},
		{grass, rock, strong},
		{bug, psychic, strong},
		{bug, grass, strong},
		{bug, dark, strong},
		{electric, water, strong},
		{electric, flying, strong},
		{rock, fire, strong},
		{rock, ice, strong},
		{rock, flying, strong},
		{rock, bug, strong},
		{ground, fire, strong},
		{ground, electric, strong},
		{ground, poison, strong},
		{ground, rock, strong},
		{ground, steel, strong},
		{fighting, normal, strong},
		{fighting, ice, strong},
		{fighting, rock, strong},
		{fighting, dark, strong},
		{fighting, steel, strong},
		{psychic, fighting, strong},
		{psychic, poison, strong},
		{poison, grass, strong},
		{dragon, dragon, strong},
		{ghost, psychic, strong},
		{ghost, ghost, strong},
		{dark, psychic, strong},
		{dark, ghost, strong},

		// Not very effective
		{flying, steel, resist},
		{flying, electric, resist},
		{flying, rock, resist},
		{steel, fire, resist},
		{steel, water, resist},
		{steel, electric, resist},
		{steel, steel, resist},
		{water, water, resist},
		{water, grass, resist},
		{water, dragon, resist},
		{ice, ice, resist},
		{ice, steel, resist},
		{ice, fire, resist},
		{ice, water, resist},
		{grass, fire, resist},
		{grass, grass, resist},
		{grass, poison, resist},
		{grass, flying, resist},
		{grass, bug, resist},
		{grass, dragon, resist},
		{grass, steel, resist},
		{bug, fire, resist},
		{bug, fighting, resist},
		{bug, poison, resist},
		{bug, flying, resist},
		{bug, steel, resist},
		{bug, ghost, resist},
		{electric, electric, resist},
		{electric, grass, resist},
		{electric, dragon, resist},
		{normal, rock, resist},
		{normal, steel, resist},
		{rock, steel, resist},
		{rock, ground, resist},
		{rock, fighting, resist},
		{ground, grass, resist},
		{ground, bug, resist},
		{fire, fire, resist},
		{fire, water, resist},
		{fire, rock, resist},
		{fire, dragon, resist},
		{fighting, poison, resist},
		{fighting, psychic, resist},
		{fighting, bug, resist},
		{fighting, flying, resist},
		{psychic, psychic, resist},
		{psychic, steel, resist},
		{poison, poison, resist},
		{poison, ground, resist},
		{poison, rock, resist},
		{poison, ghost, resist},
		{dragon, steel, resist},
		{ghost, dark, resist},
		{ghost, steel, resist},
		{dark, dark, resist},
		{dark, fighting, resist},
		{dark, steel, resist},
	}
}
