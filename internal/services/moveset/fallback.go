package moveset

import "github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"

// typeFallbacks seeds the fallback moveset by primary type
var typeFallbacks = map[pokemon.ElementType][]string{
	pokemon.TypeNormal:   {"scratch", "quick-attack"},
	pokemon.TypeFire:     {"ember", "smokescreen"},
	pokemon.TypeWater:    {"water-gun", "tail-whip"},
	pokemon.TypeGrass:    {"vine-whip", "razor-leaf"},
	pokemon.TypeElectric: {"thunder-shock", "thunder-wave"},
	pokemon.TypeIce:      {"powder-snow"},
	pokemon.TypeFighting: {"karate-chop", "leer"},
	pokemon.TypePoison:   {"poison-sting", "poison-powder"},
	pokemon.TypeGround:   {"mud-slap", "sand-attack"},
	pokemon.TypeFlying:   {"gust", "sand-attack"},
	pokemon.TypePsychic:  {"confusion", "teleport"},
	pokemon.TypeBug:      {"leech-life", "string-shot"},
	pokemon.TypeRock:     {"rock-throw", "defense-curl"},
	pokemon.TypeGhost:    {"lick"},
	pokemon.TypeDragon:   {"twister"},
	pokemon.TypeDark:     {"bite"},
	pokemon.TypeSteel:    {"metal-claw"},
}

// universalFallbacks close every fallback list
var universalFallbacks = []string{"tackle", "growl"}

// lastResortMoveIDs are tackle and growl, used when no name resolves
var lastResortMoveIDs = []int{33, 45}

// fallbackNames returns the ordered candidate names for a primary type
func fallbackNames(primary pokemon.ElementType) []string {
	names := append([]string(nil), typeFallbacks[primary]...)
	for _, name := range universalFallbacks {
		if !containsName(names, name) {
			names = append(names, name)
		}
	}
	return names
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
