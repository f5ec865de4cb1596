package services

import (
	"fmt"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokebattle-bot/internal/dice"
	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
	battleService "github.com/KirkDiggler/pokebattle-bot/internal/services/battle"
	captureService "github.com/KirkDiggler/pokebattle-bot/internal/services/capture"
	movesetService "github.com/KirkDiggler/pokebattle-bot/internal/services/moveset"
	rosterService "github.com/KirkDiggler/pokebattle-bot/internal/services/roster"
)

// Provider holds all service instances
type Provider struct {
	MovesetService movesetService.Service
	BattleService  battleService.Service
	CaptureService captureService.Service
	RosterService  rosterService.Service

	// EventBus carries what the services saved; subscribe before serving
	EventBus *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	// PokeAPIClient is optional; without it learnsets are never fetched
	PokeAPIClient pokeapi.Client

	CombatantRepository combatants.Repository
	InventoryRepository inventory.Repository
	PokedexRepository   pokedex.Repository

	// Roller defaults to an unseeded random roller
	Roller dice.Roller

	// EventBus defaults to a new bus with no listeners
	EventBus *events.Bus
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repositories if none provided
	combatantRepo := cfg.CombatantRepository
	if combatantRepo == nil {
		combatantRepo = combatants.NewInMemoryRepository()
	}

	inventoryRepo := cfg.InventoryRepository
	if inventoryRepo == nil {
		inventoryRepo = inventory.NewInMemoryRepository()
	}

	dex := cfg.PokedexRepository
	if dex == nil {
		seeded, err := pokedex.NewSeededRepository()
		if err != nil {
			return nil, fmt.Errorf("failed to seed pokedex: %w", err)
		}
		dex = seeded
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	moveset := movesetService.NewService(&movesetService.ServiceConfig{
		Pokedex:    dex,
		Combatants: combatantRepo,
		Client:     cfg.PokeAPIClient,
	})

	battle := battleService.NewService(&battleService.ServiceConfig{
		Combatants: combatantRepo,
		Pokedex:    dex,
		Moveset:    moveset,
		Roller:     roller,
		Events:     bus,
	})

	capture := captureService.NewService(&captureService.ServiceConfig{
		Combatants: combatantRepo,
		Pokedex:    dex,
		Inventory:  inventoryRepo,
		Roller:     roller,
		Events:     bus,
	})

	roster := rosterService.NewService(&rosterService.ServiceConfig{
		Combatants: combatantRepo,
		Pokedex:    dex,
		Inventory:  inventoryRepo,
		Client:     cfg.PokeAPIClient,
		Events:     bus,
	})

	return &Provider{
		MovesetService: moveset,
		BattleService:  battle,
		CaptureService: capture,
		RosterService:  roster,
		EventBus:       bus,
	}, nil
}
