package pokemon_test

import (
	"testing"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/stretchr/testify/assert"
)

func TestCombatant_ApplyDamage(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		amount   int
		wantHP   int
		wantLost int
	}{
		{name: "normal hit", current: 30, amount: 12, wantHP: 18, wantLost: 12},
		{name: "overkill clamps at zero", current: 5, amount: 40, wantHP: 0, wantLost: 5},
		{name: "zero damage", current: 30, amount: 0, wantHP: 30, wantLost: 0},
		{name: "negative is ignored", current: 30, amount: -7, wantHP: 30, wantLost: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &pokemon.Combatant{CurrentHP: tt.current, MaxHP: 30}

			lost := c.ApplyDamage(tt.amount)

			assert.Equal(t, tt.wantHP, c.CurrentHP)
			assert.Equal(t, tt.wantLost, lost)
			assert.GreaterOrEqual(t, c.CurrentHP, 0)
			assert.LessOrEqual(t, c.CurrentHP, c.MaxHP)
		})
	}
}

func TestCombatant_SetStatus(t *testing.T) {
	c := &pokemon.Combatant{Status: pokemon.StatusBadlyPoisoned}
	c.Volatile.ToxicCounter = 3

	c.SetStatus(pokemon.StatusAsleep)
	assert.Equal(t, pokemon.StatusAsleep, c.Status)
	assert.Zero(t, c.Volatile.ToxicCounter)

	c.Volatile.SleepTurns = 2
	c.SetStatus(pokemon.StatusHealthy)
	assert.Zero(t, c.Volatile.SleepTurns)
	assert.True(t, pokemon.StatusHealthy.IsValid())
	assert.False(t, pokemon.Status("confused").IsValid())
}

func TestCombatant_Clone(t *testing.T) {
	c := &pokemon.Combatant{ID: "a", CurrentHP: 10, MaxHP: 10}

	cp := c.Clone()
	cp.ApplyDamage(4)

	assert.Equal(t, 10, c.CurrentHP)
	assert.Equal(t, 6, cp.CurrentHP)
}

func TestLookupCaptureItem(t *testing.T) {
	tests := []struct {
		input string
		key   string
		bonus float64
		ok    bool
	}{
		{input: "Poke Ball", key: "poke-ball", bonus: 1.0, ok: true},
		{input: "Super Ball", key: "great-ball", bonus: 1.5, ok: true},
		{input: "ULTRA BALL", key: "ultra-ball", bonus: 2.0, ok: true},
		{input: "master-ball", key: "master-ball", bonus: pokemon.GuaranteedCaptureBonus, ok: true},
		{input: "potion", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			item, ok := pokemon.LookupCaptureItem(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.key, item.Key)
				assert.Equal(t, tt.bonus, item.Bonus)
			}
		})
	}
}

func TestSpecies_Types(t *testing.T) {
	s := &pokemon.Species{Types: []pokemon.ElementType{pokemon.TypeGrass, pokemon.TypePoison}}

	assert.Equal(t, pokemon.TypeGrass, s.PrimaryType())
	assert.Equal(t, pokemon.TypePoison, s.SecondaryType())
	assert.True(t, s.HasType(pokemon.TypePoison))
	assert.False(t, s.HasType(pokemon.TypeNone))

	mono := &pokemon.Species{Types: []pokemon.ElementType{pokemon.TypeFire}}
	assert.Equal(t, pokemon.TypeNone, mono.SecondaryType())
}

func TestMove_DealsDamage(t *testing.T) {
	assert.True(t, (&pokemon.Move{Category: pokemon.CategoryPhysical, Power: 40}).DealsDamage())
	assert.False(t, (&pokemon.Move{Category: pokemon.CategoryStatus, Power: 40}).DealsDamage())
	assert.False(t, (&pokemon.Move{Category: pokemon.CategorySpecial, Power: 0}).DealsDamage())
	assert.Equal(t, "vine-whip", pokemon.NormalizeMoveName(" Vine Whip "))
}

func TestParseMoveCategory(t *testing.T) {
	tests := []struct {
		raw    string
		want   pokemon.MoveCategory
		wantOK bool
	}{
		{raw: "Especial", want: pokemon.CategorySpecial, wantOK: true},
		{raw: " physical ", want: pokemon.CategoryPhysical, wantOK: true},
		{raw: "Física", want: pokemon.CategoryPhysical, wantOK: true},
		{raw: "status", want: pokemon.CategoryStatus, wantOK: true},
		{raw: "melee", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := pokemon.ParseMoveCategory(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryForType(t *testing.T) {
	assert.Equal(t, pokemon.CategorySpecial, pokemon.CategoryForType(pokemon.TypeDark))
	assert.Equal(t, pokemon.CategoryPhysical, pokemon.CategoryForType(pokemon.TypeGhost))
	// Typeless damaging moves are physical
	assert.Equal(t, pokemon.CategoryPhysical, pokemon.CategoryForType(pokemon.TypeNone))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Quick Attack", pokemon.DisplayName("quick-attack"))
	assert.Equal(t, "Cyndaquil", pokemon.DisplayName("cyndaquil"))
	assert.Equal(t, "", pokemon.DisplayName(""))
}
