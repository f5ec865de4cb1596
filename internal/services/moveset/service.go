package moveset

//go:generate mockgen -destination=mock/mock_service.go -package=mockmoveset -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
)

const maxSlots = pokemon.MaxMoveSlots

// Service derives and tracks the active moves of combatants
type Service interface {
	// ResolveActiveSlots derives the 1-4 active moves of a combatant and
	// reconciles them against its persisted slots. Nothing is saved.
	ResolveActiveSlots(ctx context.Context, combatant *pokemon.Combatant, persisted []*pokemon.MoveSlot) (*ActiveSet, error)

	// ListActiveMoves loads a combatant and returns its active moves,
	// saving the reconciled slots when they changed
	ListActiveMoves(ctx context.Context, combatantID string) ([]*ActiveMove, error)

	// ConsumeSlot spends one PP of an active move and saves it
	ConsumeSlot(ctx context.Context, combatantID string, moveID int) (*ActiveMove, error)
}

type service struct {
	pokedex    pokedex.Repository
	combatants combatants.Repository
	client     pokeapi.Client
	learnsets  *learnsetCache
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Pokedex    pokedex.Repository
	Combatants combatants.Repository

	// Client is optional; without it every species uses the fallback moveset
	Client pokeapi.Client
}

// NewService creates a new moveset service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Pokedex == nil {
		panic("pokedex repository is required")
	}
	if cfg.Combatants == nil {
		panic("combatant repository is required")
	}

	return &service{
		pokedex:    cfg.Pokedex,
		combatants: cfg.Combatants,
		client:     cfg.Client,
		learnsets:  newLearnsetCache(cfg.Client),
	}
}

// ResolveActiveSlots derives the active moves of a combatant
func (s *service) ResolveActiveSlots(ctx context.Context, combatant *pokemon.Combatant, persisted []*pokemon.MoveSlot) (*ActiveSet, error) {
	if combatant == nil {
		return nil, apperr.InvalidArgument("combatant is required")
	}

	species, err := s.pokedex.GetSpecies(ctx, combatant.SpeciesID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Integrityf("species %d of combatant %s is missing", combatant.SpeciesID, combatant.ID).
				WithMeta("combatant_id", combatant.ID)
		}
		return nil, apperr.Wrap(err, "failed to load species")
	}

	moves, err := s.learnedMoves(ctx, species, combatant.Level)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		moves, err = s.fallbackMoves(ctx, species)
		if err != nil {
			return nil, err
		}
	}

	return reconcile(combatant.ID, moves, persisted), nil
}

// ListActiveMoves returns the active moves of a stored combatant
func (s *service) ListActiveMoves(ctx context.Context, combatantID string) ([]*ActiveMove, error) {
	combatant, set, err := s.load(ctx, combatantID)
	if err != nil {
		return nil, err
	}

	if set.Changed {
		if err := s.save(ctx, combatant, set); err != nil {
			return nil, err
		}
	}

	return set.Moves, nil
}

// ConsumeSlot spends one PP of an active move
func (s *service) ConsumeSlot(ctx context.Context, combatantID string, moveID int) (*ActiveMove, error) {
	combatant, set, err := s.load(ctx, combatantID)
	if err != nil {
		return nil, err
	}

	active, err := set.Find(moveID)
	if err != nil {
		return nil, err
	}
	active.Spend()

	if err := s.save(ctx, combatant, set); err != nil {
		return nil, err
	}

	return active, nil
}

func (s *service) load(ctx context.Context, combatantID string) (*pokemon.Combatant, *ActiveSet, error) {
	combatant, err := s.combatants.Get(ctx, combatantID)
	if err != nil {
		return nil, nil, err
	}

	persisted, err := s.combatants.GetMoveSlots(ctx, combatantID)
	if err != nil {
		return nil, nil, apperr.Wrap(err, "failed to load move slots")
	}

	set, err := s.ResolveActiveSlots(ctx, combatant, persisted)
	if err != nil {
		return nil, nil, err
	}

	return combatant, set, nil
}

func (s *service) save(ctx context.Context, combatant *pokemon.Combatant, set *ActiveSet) error {
	changes := &combatants.Changes{}
	changes.Add(combatant)
	changes.SetMoveSlots(combatant.ID, set.Slots())

	if err := s.combatants.Commit(ctx, changes); err != nil {
		return apperr.Wrap(err, "failed to save move slots")
	}
	return nil
}

// learnedMoves resolves the picked learn table entries to moves. Entries
// that resolve to nothing are skipped.
func (s *service) learnedMoves(ctx context.Context, species *pokemon.Species, level int) ([]*pokemon.Move, error) {
	picks := pickLearned(s.learnsets.get(ctx, species.ID), level)

	moves := make([]*pokemon.Move, 0, len(picks))
	for _, entry := range picks {
		move, err := s.moveByID(ctx, entry.MoveID)
		if err != nil {
			if apperr.IsNotFound(err) {
				log.Printf("[MOVESET] skipping %s (%d) for species %d: %v", entry.MoveName, entry.MoveID, species.ID, err)
				continue
			}
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// moveByID reads a move from the pokedex, filling gaps from the catalog
func (s *service) moveByID(ctx context.Context, moveID int) (*pokemon.Move, error) {
	move, err := s.pokedex.GetMove(ctx, moveID)
	if err == nil {
		return move, nil
	}
	if !apperr.IsNotFound(err) || s.client == nil {
		return nil, err
	}

	move, err = s.client.GetMove(ctx, moveID)
	if err != nil {
		log.Printf("[MOVESET] catalog lookup of move %d failed: %v", moveID, err)
		return nil, apperr.NotFoundf("move %d not found", moveID).WithMeta("move_id", moveID)
	}
	if err := s.pokedex.PutMove(ctx, move); err != nil {
		return nil, apperr.Wrap(err, "failed to cache move")
	}

	return move, nil
}

// fallbackMoves builds the fixed moveset used when no learn table is
// available: type moves first, then tackle and growl, then raw ids.
func (s *service) fallbackMoves(ctx context.Context, species *pokemon.Species) ([]*pokemon.Move, error) {
	var moves []*pokemon.Move
	for _, name := range fallbackNames(species.PrimaryType()) {
		if len(moves) == maxSlots {
			break
		}
		move, err := s.pokedex.GetMoveByName(ctx, name)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, apperr.Wrap(err, "failed to load fallback move")
		}
		moves = append(moves, move)
	}
	if len(moves) > 0 {
		return moves, nil
	}

	for _, id := range lastResortMoveIDs {
		move, err := s.pokedex.GetMove(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, apperr.Wrap(err, "failed to load fallback move")
		}
		moves = append(moves, move)
	}
	if len(moves) == 0 {
		return nil, apperr.Integrityf("no moves could be resolved for species %d", species.ID).
			WithMeta("species_id", species.ID)
	}

	return moves, nil
}
