package pokeapi

import (
	"sort"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/rulebook/gen2/typechart"
)

func apiMoveToMove(resp *moveResponse) *pokemon.Move {
	moveType := typechart.Normalize(resp.Type.Name)
	if moveType == pokemon.TypeNone {
		// Types introduced after Gen II
		moveType = pokemon.TypeNormal
	}

	move := &pokemon.Move{
		ID:       resp.ID,
		Name:     resp.Name,
		Type:     moveType,
		Category: pokemon.CategoryStatus,
		Accuracy: 100,
	}
	if resp.Power != nil {
		move.Power = *resp.Power
	}
	if resp.Accuracy != nil {
		move.Accuracy = *resp.Accuracy
	}
	if resp.PP != nil {
		move.PP = *resp.PP
	}
	if resp.DamageClass.Name != string(pokemon.CategoryStatus) && move.Power > 0 {
		move.Category = pokemon.CategoryForType(moveType)
	}

	return move
}

func apiPokemonToSpecies(mon *pokemonResponse, species *speciesResponse) *pokemon.Species {
	slots := make([]pokemonTypeSlot, len(mon.Types))
	copy(slots, mon.Types)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	var types []pokemon.ElementType
	for _, slot := range slots {
		if t := typechart.Normalize(slot.Type.Name); t != pokemon.TypeNone {
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		types = []pokemon.ElementType{pokemon.TypeNormal}
	}

	var base pokemon.BaseStats
	for _, stat := range mon.Stats {
		switch stat.Stat.Name {
		case "hp":
			base.HP = stat.BaseStat
		case "attack":
			base.Attack = stat.BaseStat
		case "defense":
			base.Defense = stat.BaseStat
		case "special-attack":
			base.SpecialAttack = stat.BaseStat
		case "special-defense":
			base.SpecialDefense = stat.BaseStat
		case "speed":
			base.Speed = stat.BaseStat
		}
	}

	name := species.Name
	if name == "" {
		name = mon.Name
	}

	return &pokemon.Species{
		ID:          mon.ID,
		Name:        name,
		Types:       types,
		BaseStats:   base,
		CaptureRate: species.CaptureRate,
	}
}
