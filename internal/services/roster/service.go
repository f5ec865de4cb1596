package roster

//go:generate mockgen -destination=mock/mock_service.go -package=mockroster -source=service.go

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
	"github.com/KirkDiggler/pokebattle-bot/internal/uuid"
)

const (
	// StarterLevel is the level every starter begins at
	StarterLevel = 5

	// MaxLevel bounds spawned levels
	MaxLevel = 100

	// StarterBalls is how many poke balls a new trainer receives
	StarterBalls   = 5
	starterBallKey = "poke-ball"
)

// StarterSpeciesIDs are the species a trainer may start with
var StarterSpeciesIDs = []int{152, 155, 158}

// Service manages trainer teams and wild combatants
type Service interface {
	// ChooseStarter gives a trainer their first combatant. A trainer who
	// already has a team gets their lead back unchanged.
	ChooseStarter(ctx context.Context, input *ChooseStarterInput) (*ChooseStarterResult, error)

	// SpawnWild creates an unowned combatant
	SpawnWild(ctx context.Context, input *SpawnWildInput) (*Member, error)

	// ListTeam returns a trainer's combatants ordered by team position
	ListTeam(ctx context.Context, trainerID string) ([]*Member, error)

	// ListWild returns the wild combatants currently in the world
	ListWild(ctx context.Context) ([]*Member, error)
}

// ChooseStarterInput selects a starter
type ChooseStarterInput struct {
	TrainerID string
	SpeciesID int
}

// ChooseStarterResult is the trainer's lead combatant
type ChooseStarterResult struct {
	Member *Member

	// Created is false when the trainer already had a team
	Created bool
}

// SpawnWildInput describes a wild combatant to create
type SpawnWildInput struct {
	SpeciesID int
	Level     int
}

// Member pairs a combatant with its species
type Member struct {
	Combatant *pokemon.Combatant
	Species   *pokemon.Species
}

// Name is the display name, prefixed for wild combatants
func (m *Member) Name() string {
	name := pokemon.DisplayName(m.Species.Name)
	if m.Combatant.IsWild() {
		return "Wild " + name
	}
	return name
}

type service struct {
	combatants combatants.Repository
	pokedex    pokedex.Repository
	inventory  inventory.Repository
	client     pokeapi.Client
	ids        uuid.Generator
	events     *events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Combatants combatants.Repository
	Pokedex    pokedex.Repository
	Inventory  inventory.Repository

	// Client is optional; without it only species already in the pokedex
	// can be spawned
	Client pokeapi.Client

	// UUIDGenerator defaults to prefixed google uuids
	UUIDGenerator uuid.Generator

	// Events receives a StarterChosen event for new starters. Optional.
	Events *events.Bus
}

// NewService creates a new roster service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Combatants == nil {
		panic("combatant repository is required")
	}
	if cfg.Pokedex == nil {
		panic("pokedex repository is required")
	}
	if cfg.Inventory == nil {
		panic("inventory repository is required")
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewPrefixedGenerator("pkm_")
	}

	return &service{
		combatants: cfg.Combatants,
		pokedex:    cfg.Pokedex,
		inventory:  cfg.Inventory,
		client:     cfg.Client,
		ids:        ids,
		events:     cfg.Events,
	}
}

// ChooseStarter creates the trainer's first combatant
func (s *service) ChooseStarter(ctx context.Context, input *ChooseStarterInput) (*ChooseStarterResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("starter input is required")
	}
	if input.TrainerID == "" {
		return nil, apperr.InvalidArgument("trainer ID is required")
	}
	if !slices.Contains(StarterSpeciesIDs, input.SpeciesID) {
		return nil, apperr.InvalidArgument("you can only choose Chikorita (152), Cyndaquil (155) or Totodile (158)").
			WithMeta("species_id", input.SpeciesID)
	}

	if lead, err := s.lead(ctx, input.TrainerID); err != nil || lead != nil {
		if err != nil {
			return nil, err
		}
		return &ChooseStarterResult{Member: lead}, nil
	}

	species, err := s.pokedex.GetSpecies(ctx, input.SpeciesID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Integrityf("starter species %d is missing from the pokedex", input.SpeciesID)
		}
		return nil, apperr.Wrap(err, "failed to load starter species")
	}

	starter := newCombatant(starterID(input.TrainerID), species, StarterLevel)
	starter.OwnerID = input.TrainerID

	if err := s.combatants.Create(ctx, starter); err != nil {
		if apperr.IsAlreadyExists(err) {
			// lost a race against another request from the same trainer
			lead, leadErr := s.lead(ctx, input.TrainerID)
			if leadErr != nil {
				return nil, leadErr
			}
			if lead != nil {
				return &ChooseStarterResult{Member: lead}, nil
			}
		}
		return nil, apperr.Wrap(err, "failed to create starter")
	}

	if _, err := s.inventory.Credit(ctx, input.TrainerID, starterBallKey, StarterBalls); err != nil {
		return nil, apperr.Wrap(err, "failed to grant starter items")
	}

	log.Printf("[ROSTER] %s chose %s (%s)", input.TrainerID, species.Name, starter.ID)

	events.Publish(s.events, &events.StarterChosenEvent{
		BaseEvent: events.BaseEvent{
			Type:      events.EventTypeStarterChosen,
			TrainerID: input.TrainerID,
		},
		CombatantID: starter.ID,
		SpeciesID:   species.ID,
	})

	return &ChooseStarterResult{
		Member:  &Member{Combatant: starter, Species: species},
		Created: true,
	}, nil
}

// SpawnWild creates an unowned combatant, fetching its species when the
// pokedex does not know it yet
func (s *service) SpawnWild(ctx context.Context, input *SpawnWildInput) (*Member, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("spawn input is required")
	}
	if input.Level < 1 || input.Level > MaxLevel {
		return nil, apperr.InvalidArgumentf("level must be between 1 and %d", MaxLevel).
			WithMeta("level", input.Level)
	}

	species, err := s.species(ctx, input.SpeciesID)
	if err != nil {
		return nil, err
	}

	wild := newCombatant(s.ids.New(), species, input.Level)
	if err := s.combatants.Create(ctx, wild); err != nil {
		return nil, apperr.Wrap(err, "failed to create wild combatant")
	}

	log.Printf("[ROSTER] spawned wild %s level %d (%s)", species.Name, input.Level, wild.ID)

	return &Member{Combatant: wild, Species: species}, nil
}

// ListTeam returns the trainer's team
func (s *service) ListTeam(ctx context.Context, trainerID string) ([]*Member, error) {
	if trainerID == "" {
		return nil, apperr.InvalidArgument("trainer ID is required")
	}
	return s.members(ctx, trainerID)
}

// ListWild returns every wild combatant
func (s *service) ListWild(ctx context.Context) ([]*Member, error) {
	return s.members(ctx, "")
}

func (s *service) members(ctx context.Context, ownerID string) ([]*Member, error) {
	list, err := s.combatants.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]*Member, 0, len(list))
	for _, c := range list {
		species, err := s.pokedex.GetSpecies(ctx, c.SpeciesID)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, apperr.Integrityf("species %d of combatant %s is missing", c.SpeciesID, c.ID).
					WithMeta("combatant_id", c.ID)
			}
			return nil, apperr.Wrap(err, "failed to load species")
		}
		out = append(out, &Member{Combatant: c, Species: species})
	}
	return out, nil
}

// lead returns the trainer's first team member, or nil without a team
func (s *service) lead(ctx context.Context, trainerID string) (*Member, error) {
	team, err := s.members(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if len(team) == 0 {
		return nil, nil
	}
	return team[0], nil
}

func (s *service) species(ctx context.Context, id int) (*pokemon.Species, error) {
	species, err := s.pokedex.GetSpecies(ctx, id)
	if err == nil {
		return species, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, apperr.Wrap(err, "failed to load species")
	}
	if s.client == nil {
		return nil, apperr.NotFoundf("unknown species %d", id).WithMeta("species_id", id)
	}

	species, err = s.client.GetSpecies(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFoundf("unknown species %d", id).WithMeta("species_id", id)
		}
		return nil, apperr.Wrap(err, "failed to fetch species")
	}
	if err := s.pokedex.PutSpecies(ctx, species); err != nil {
		return nil, apperr.Wrap(err, "failed to store species")
	}
	return species, nil
}

// starterID is fixed per trainer so two racing requests cannot both create one
func starterID(trainerID string) string {
	return fmt.Sprintf("starter_%s", trainerID)
}

// newCombatant builds a healthy combatant at full HP. HP is the base value
// plus ten, never below 20. Every other stat is the base value, never below 5.
func newCombatant(id string, species *pokemon.Species, level int) *pokemon.Combatant {
	base := species.BaseStats
	maxHP := max(20, base.HP+10)

	return &pokemon.Combatant{
		ID:        id,
		SpeciesID: species.ID,
		Level:     level,
		CurrentHP: maxHP,
		MaxHP:     maxHP,
		Stats: pokemon.Stats{
			Attack:         max(5, base.Attack),
			Defense:        max(5, base.Defense),
			SpecialAttack:  max(5, base.SpecialAttack),
			SpecialDefense: max(5, base.SpecialDefense),
			Speed:          max(5, base.Speed),
		},
		Status: pokemon.StatusHealthy,
	}
}
