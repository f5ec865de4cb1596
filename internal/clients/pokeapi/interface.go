package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=mockpokeapi . Client

import (
	"context"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// LearnsetEntry is one move a species learns by leveling up
type LearnsetEntry struct {
	MoveID   int
	MoveName string
	Level    int
}

// Client fetches reference data from the species catalog
type Client interface {
	// GetLearnset returns the level-up moves of a species for the configured
	// version group, one entry per move at the lowest level it is learned
	GetLearnset(ctx context.Context, speciesID int) ([]*LearnsetEntry, error)
	GetMove(ctx context.Context, moveID int) (*pokemon.Move, error)
	GetSpecies(ctx context.Context, speciesID int) (*pokemon.Species, error)
}
