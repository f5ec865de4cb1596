package pokedex

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

//go:embed data/*.json
var seedFS embed.FS

// LoadSeed reads the embedded species and move tables
func LoadSeed() ([]*pokemon.Species, []*pokemon.Move, error) {
	var species []*pokemon.Species
	if err := readSeedFile("data/species.json", &species); err != nil {
		return nil, nil, err
	}

	var moves []*pokemon.Move
	if err := readSeedFile("data/moves.json", &moves); err != nil {
		return nil, nil, err
	}

	return species, moves, nil
}

func readSeedFile(name string, out any) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
