package pokedex

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// InMemoryRepository is a map-backed pokedex
type InMemoryRepository struct {
	mu          sync.RWMutex
	species     map[int]*pokemon.Species
	moves       map[int]*pokemon.Move
	movesByName map[string]*pokemon.Move
}

// NewInMemoryRepository creates an empty pokedex
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		species:     make(map[int]*pokemon.Species),
		moves:       make(map[int]*pokemon.Move),
		movesByName: make(map[string]*pokemon.Move),
	}
}

// NewSeededRepository creates a pokedex preloaded with the embedded seed data
func NewSeededRepository() (*InMemoryRepository, error) {
	species, moves, err := LoadSeed()
	if err != nil {
		return nil, err
	}

	repo := NewInMemoryRepository()
	ctx := context.Background()
	for _, s := range species {
		if err := repo.PutSpecies(ctx, s); err != nil {
			return nil, err
		}
	}
	for _, m := range moves {
		if err := repo.PutMove(ctx, m); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// GetSpecies retrieves a species by pokedex number
func (r *InMemoryRepository) GetSpecies(ctx context.Context, id int) (*pokemon.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	species, exists := r.species[id]
	if !exists {
		return nil, apperr.NotFoundf("species %d not found", id).WithMeta("species_id", id)
	}

	return copySpecies(species), nil
}

// ListSpecies returns every known species ordered by id
func (r *InMemoryRepository) ListSpecies(ctx context.Context) ([]*pokemon.Species, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*pokemon.Species, 0, len(r.species))
	for _, s := range r.species {
		result = append(result, copySpecies(s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// PutSpecies stores a species
func (r *InMemoryRepository) PutSpecies(ctx context.Context, species *pokemon.Species) error {
	if species == nil {
		return apperr.InvalidArgument("species cannot be nil")
	}
	if species.ID <= 0 {
		return apperr.InvalidArgumentf("invalid species id %d", species.ID)
	}
	if len(species.Types) == 0 || len(species.Types) > 2 {
		return apperr.InvalidArgumentf("species %d must have one or two types", species.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.species[species.ID] = copySpecies(species)
	return nil
}

// GetMove retrieves a move by id
func (r *InMemoryRepository) GetMove(ctx context.Context, id int) (*pokemon.Move, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	move, exists := r.moves[id]
	if !exists {
		return nil, apperr.NotFoundf("move %d not found", id).WithMeta("move_id", id)
	}

	moveCopy := *move
	return &moveCopy, nil
}

// GetMoveByName retrieves a move by its catalog name
func (r *InMemoryRepository) GetMoveByName(ctx context.Context, name string) (*pokemon.Move, error) {
	key := pokemon.NormalizeMoveName(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	move, exists := r.movesByName[key]
	if !exists {
		return nil, apperr.NotFoundf("move %q not found", name).WithMeta("move_name", key)
	}

	moveCopy := *move
	return &moveCopy, nil
}

// PutMove stores a move
func (r *InMemoryRepository) PutMove(ctx context.Context, move *pokemon.Move) error {
	if move == nil {
		return apperr.InvalidArgument("move cannot be nil")
	}
	if move.ID <= 0 {
		return apperr.InvalidArgumentf("invalid move id %d", move.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	moveCopy := *move
	r.moves[move.ID] = &moveCopy
	if move.Name != "" {
		r.movesByName[pokemon.NormalizeMoveName(move.Name)] = &moveCopy
	}
	return nil
}

func copySpecies(s *pokemon.Species) *pokemon.Species {
	cp := *s
	cp.Types = append([]pokemon.ElementType(nil), s.Types...)
	return &cp
}
