package battle

import (
	"strings"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/rulebook/gen2/typechart"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// MoveSelector picks the move of a turn. With neither field set the first
// active move with PP left is used.
type MoveSelector struct {
	// MoveID selects one of the attacker's active moves
	MoveID int

	// Inline describes an ad-hoc move that uses no slot and always hits
	Inline *InlineMove
}

// InlineMove is the legacy (type, power, category) form of a move
type InlineMove struct {
	Type     string
	Power    int
	Category string
}

// toMove builds the move an inline selector stands for. A blank category
// falls back to the category of the type; an unknown type is typeless and
// hits neutrally.
func (m *InlineMove) toMove() (*pokemon.Move, error) {
	moveType := typechart.Normalize(m.Type)

	category := pokemon.CategoryForType(moveType)
	if strings.TrimSpace(m.Category) != "" {
		parsed, ok := pokemon.ParseMoveCategory(m.Category)
		if !ok {
			return nil, apperr.InvalidArgumentf("unknown move category %q", m.Category).
				WithMeta("category", m.Category)
		}
		category = parsed
	}

	return &pokemon.Move{
		Name:     "attack",
		Type:     moveType,
		Category: category,
		Power:    m.Power,
		Accuracy: 100,
	}, nil
}

// ResolveTurnInput identifies the two sides of a turn
type ResolveTurnInput struct {
	// TrainerID is the authenticated caller. When set it must own the attacker.
	TrainerID string

	AttackerID string
	DefenderID string
	Selector   MoveSelector
}

// TurnOutcome is what happened during one turn
type TurnOutcome struct {
	AttackerID string
	DefenderID string
	MoveID     int
	MoveName   string

	// Damage is the HP the defender actually lost to the move
	Damage     int
	AttackerHP int
	DefenderHP int

	// Multiplier is type effectiveness times the critical factor
	Multiplier float64
	Critical   bool

	Blocked         bool
	Missed          bool
	DefenderFainted bool
	AttackerFainted bool

	EffectivenessMessage string
	PPMessage            string

	// Messages is the battle log of the turn in order
	Messages []string
}
