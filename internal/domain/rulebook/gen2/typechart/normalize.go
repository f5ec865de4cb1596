package typechart

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// synonyms maps every accepted spelling (English and Spanish, accents
// folded) onto the canonical type.
var synonyms = map[string]pokemon.ElementType{
	"normal":    pokemon.TypeNormal,
	"fire":      pokemon.TypeFire,
	"fuego":     pokemon.TypeFire,
	"water":     pokemon.TypeWater,
	"agua":      pokemon.TypeWater,
	"grass":     pokemon.TypeGrass,
	"planta":    pokemon.TypeGrass,
	"electric":  pokemon.TypeElectric,
	"electrico": pokemon.TypeElectric,
	"ice":       pokemon.TypeIce,
	"hielo":     pokemon.TypeIce,
	"fighting":  pokemon.TypeFighting,
	"lucha":     pokemon.TypeFighting,
	"poison":    pokemon.TypePoison,
	"veneno":    pokemon.TypePoison,
	"ground":    pokemon.TypeGround,
	"tierra":    pokemon.TypeGround,
	"flying":    pokemon.TypeFlying,
	"volador":   pokemon.TypeFlying,
	"psychic":   pokemon.TypePsychic,
	"psiquico":  pokemon.TypePsychic,
	"bug":       pokemon.TypeBug,
	"bicho":     pokemon.TypeBug,
	"rock":      pokemon.TypeRock,
	"roca":      pokemon.TypeRock,
	"ghost":     pokemon.TypeGhost,
	"fantasma":  pokemon.TypeGhost,
	"dragon":    pokemon.TypeDragon,
	"dark":      pokemon.TypeDark,
	"siniestro": pokemon.TypeDark,
	"steel":     pokemon.TypeSteel,
	"acero":     pokemon.TypeSteel,
}

// Normalize maps a raw type name onto its canonical form. Unknown or empty
// names normalize to pokemon.TypeNone.
func Normalize(raw string) pokemon.ElementType {
	key := FoldName(raw)
	if key == "" {
		return pokemon.TypeNone
	}
	return synonyms[key]
}

// FoldName lowercases, trims and strips diacritics, so "Eléctrico" and
// "electrico" compare equal.
func FoldName(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(raw))
	if err != nil {
		folded = strings.TrimSpace(raw)
	}
	return strings.ToLower(folded)
}
