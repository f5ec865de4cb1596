package pokemon

import "strings"

// MoveCategory decides which stat pair a move uses
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
	CategoryStatus   MoveCategory = "status"
)

// ParseMoveCategory maps a free-form category onto a known value. The
// second result is false when the category is not recognized.
func ParseMoveCategory(raw string) (MoveCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "physical", "fisico", "físico", "fisica", "física":
		return CategoryPhysical, true
	case "special", "especial":
		return CategorySpecial, true
	case "status", "estado":
		return CategoryStatus, true
	default:
		return "", false
	}
}

// Move is immutable reference data for one move
type Move struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Type     ElementType  `json:"type"`
	Category MoveCategory `json:"category"`
	Power    int          `json:"power"`
	Accuracy int          `json:"accuracy"`
	PP       int          `json:"pp"`
}

// DealsDamage reports whether the move goes through the damage formula
func (m *Move) DealsDamage() bool {
	return m != nil && m.Category != CategoryStatus && m.Power > 0
}

// IsPhysical reports whether the move uses attack/defense
func (m *Move) IsPhysical() bool {
	return m != nil && m.Category == CategoryPhysical
}

// NormalizeMoveName folds a display or catalog name ("Vine Whip", "vine-whip")
// into the key used for lookups.
func NormalizeMoveName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, "_", "-")
	return key
}

// CategoryForType returns the Gen II damage category of a type. Before the
// physical/special split moved to individual moves, the type decided it.
func CategoryForType(t ElementType) MoveCategory {
	switch t {
	case TypeFire, TypeWater, TypeGrass, TypeElectric, TypeIce, TypePsychic, TypeDragon, TypeDark:
		return CategorySpecial
	default:
		return CategoryPhysical
	}
}
