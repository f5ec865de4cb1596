package capture

//go:generate mockgen -destination=mock/mock_service.go -package=mockcapture -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/pokebattle-bot/internal/dice"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/rulebook/gen2/calculators"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
)

// Service resolves capture attempts
type Service interface {
	// ResolveCapture throws one ball at a wild combatant. The ball is spent
	// whether or not the capture succeeds.
	ResolveCapture(ctx context.Context, input *ResolveCaptureInput) (*Result, error)

	// ListBalls returns how many of each capture item a trainer carries,
	// in catalog order. Items the trainer has none of are included.
	ListBalls(ctx context.Context, trainerID string) ([]*BallCount, error)
}

// BallCount is a capture item and the quantity a trainer holds
type BallCount struct {
	Item     pokemon.CaptureItem
	Quantity int
}

// ResolveCaptureInput describes one capture attempt
type ResolveCaptureInput struct {
	// TrainerID is the authenticated caller, never a client supplied value
	TrainerID string
	TargetID  string
	ItemName  string
}

// Result is the outcome of a capture attempt
type Result struct {
	Captured bool
	Message  string

	// TeamPosition is where the caught combatant was placed
	TeamPosition int

	// ItemsRemaining is how many of the thrown item the trainer has left
	ItemsRemaining int

	// Probability is the chance the throw had
	Probability float64
}

type service struct {
	combatants combatants.Repository
	pokedex    pokedex.Repository
	inventory  inventory.Repository
	calculator *calculators.Calculator
	events     *events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Combatants combatants.Repository
	Pokedex    pokedex.Repository
	Inventory  inventory.Repository
	Roller     dice.Roller

	// Events receives a CombatantCaptured event after a saved capture. Optional.
	Events *events.Bus
}

// NewService creates a new capture service
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

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &service{
		combatants: cfg.Combatants,
		pokedex:    cfg.Pokedex,
		inventory:  cfg.Inventory,
		calculator: calculators.NewCalculator(roller),
		events:     cfg.Events,
	}
}

// ResolveCapture throws one ball
func (s *service) ResolveCapture(ctx context.Context, input *ResolveCaptureInput) (*Result, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("capture input is required")
	}
	if input.TrainerID == "" {
		return nil, apperr.InvalidArgument("trainer ID is required")
	}
	if input.TargetID == "" {
		return nil, apperr.InvalidArgument("target ID is required")
	}

	item, ok := pokemon.LookupCaptureItem(input.ItemName)
	if !ok {
		return nil, apperr.InvalidArgumentf("unknown capture item %q", input.ItemName).
			WithMeta("item", input.ItemName)
	}

	target, err := s.combatants.Get(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}
	if target.OwnerID == input.TrainerID {
		return nil, apperr.FailedPrecondition("that pokemon is already yours").
			WithMeta("combatant_id", target.ID)
	}
	if !target.IsWild() {
		return nil, apperr.PermissionDenied("that pokemon belongs to another trainer").
			WithMeta("combatant_id", target.ID)
	}
	if target.IsFainted() {
		return nil, apperr.FailedPrecondition("a fainted pokemon cannot be caught").
			WithMeta("combatant_id", target.ID)
	}

	species, err := s.pokedex.GetSpecies(ctx, target.SpeciesID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Integrityf("species %d of combatant %s is missing", target.SpeciesID, target.ID).
				WithMeta("combatant_id", target.ID)
		}
		return nil, apperr.Wrap(err, "failed to load species")
	}
	name := pokemon.DisplayName(species.Name)

	remaining, err := s.inventory.Debit(ctx, input.TrainerID, item.Key, 1)
	if err != nil {
		return nil, err
	}

	in := calculators.CaptureInput{
		MaxHP:     target.MaxHP,
		CurrentHP: target.CurrentHP,
		CatchRate: species.CaptureRate,
		BallBonus: item.Bonus,
		Status:    target.Status,
	}
	result := &Result{
		ItemsRemaining: remaining,
		Probability:    calculators.CaptureProbability(in),
	}

	caught, err := s.calculator.ComputeCapture(in)
	if err != nil {
		s.refund(ctx, input.TrainerID, item.Key)
		return nil, apperr.Wrap(err, "failed to roll capture")
	}

	if !caught {
		result.Message = fmt.Sprintf("Oh no! The wild %s broke free!", name)
		log.Printf("[CAPTURE] %s missed %s with %s (p=%.3f)", input.TrainerID, target.ID, item.Key, result.Probability)
		return result, nil
	}

	team, err := s.combatants.ListByOwner(ctx, input.TrainerID)
	if err != nil {
		s.refund(ctx, input.TrainerID, item.Key)
		return nil, apperr.Wrap(err, "failed to load team")
	}

	target.OwnerID = input.TrainerID
	target.TeamPosition = FirstFreePosition(team)

	if err := s.combatants.Commit(ctx, &combatants.Changes{Combatants: []*pokemon.Combatant{target}}); err != nil {
		s.refund(ctx, input.TrainerID, item.Key)
		return nil, apperr.Wrap(err, "failed to save capture")
	}

	result.Captured = true
	result.TeamPosition = target.TeamPosition
	result.Message = fmt.Sprintf("Gotcha! %s was caught!", name)
	log.Printf("[CAPTURE] %s caught %s (%s) into position %d", input.TrainerID, target.ID, species.Name, target.TeamPosition)

	captured := &events.CombatantCapturedEvent{
		BaseEvent: events.BaseEvent{
			Type:      events.EventTypeCombatantCaptured,
			TrainerID: input.TrainerID,
		},
		CombatantID:  target.ID,
		ItemKey:      item.Key,
		TeamPosition: target.TeamPosition,
	}
	events.Publish(s.events, captured)

	return result, nil
}

// ListBalls reads the trainer's capture items
func (s *service) ListBalls(ctx context.Context, trainerID string) ([]*BallCount, error) {
	if trainerID == "" {
		return nil, apperr.InvalidArgument("trainer ID is required")
	}

	held, err := s.inventory.List(ctx, trainerID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load inventory")
	}

	items := pokemon.CaptureItems()
	out := make([]*BallCount, len(items))
	for i, item := range items {
		out[i] = &BallCount{Item: item, Quantity: held[item.Key]}
	}
	return out, nil
}

// refund credits back a ball whose throw could not be completed
func (s *service) refund(ctx context.Context, trainerID, itemKey string) {
	if _, err := s.inventory.Credit(ctx, trainerID, itemKey, 1); err != nil {
		log.Printf("[CAPTURE] failed to refund %s to %s: %v", itemKey, trainerID, err)
	}
}

// FirstFreePosition returns the lowest unused team position. When every
// team position is taken the combatant goes to storage, one past the highest
// position in use.
func FirstFreePosition(team []*pokemon.Combatant) int {
	used := make(map[int]bool, len(team))
	highest := -1
	for _, c := range team {
		used[c.TeamPosition] = true
		highest = max(highest, c.TeamPosition)
	}

	for pos := 0; pos < pokemon.TeamSize; pos++ {
		if !used[pos] {
			return pos
		}
	}
	return highest + 1
}
