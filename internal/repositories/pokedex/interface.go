package pokedex

//go:generate mockgen -destination=mock/mock.go -package=mockpokedex -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
)

// Repository holds species and move reference data. Entries are read-only
// once stored; Put exists to cache catalog lookups that the seed lacks.
type Repository interface {
	// GetSpecies retrieves a species by pokedex number
	GetSpecies(ctx context.Context, id int) (*pokemon.Species, error)

	// ListSpecies returns every known species ordered by id
	ListSpecies(ctx context.Context) ([]*pokemon.Species, error)

	// PutSpecies stores a species
	PutSpecies(ctx context.Context, species *pokemon.Species) error

	// GetMove retrieves a move by id
	GetMove(ctx context.Context, id int) (*pokemon.Move, error)

	// GetMoveByName retrieves a move by its catalog name ("vine-whip", "Vine Whip")
	GetMoveByName(ctx context.Context, name string) (*pokemon.Move, error)

	// PutMove stores a move
	PutMove(ctx context.Context, move *pokemon.Move) error
}
