package moveset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/moveset"
)

func TestActiveMove_PPMessage(t *testing.T) {
	m := &moveset.ActiveMove{
		Move: &pokemon.Move{ID: 52, Name: "ember", Type: pokemon.TypeFire, PP: 25},
		Slot: &pokemon.MoveSlot{CombatantID: "cyn", MoveID: 52, CurrentPP: 24, MaxPP: 25},
	}

	assert.Equal(t, "Ember: 24/25 PP left.", m.PPMessage())

	m.Move.Name = "thunder-shock"
	assert.Equal(t, "Thunder Shock: 24/25 PP left.", m.PPMessage())
}
