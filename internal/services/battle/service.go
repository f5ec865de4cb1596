package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/pokebattle-bot/internal/dice"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/conditions"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/rulebook/gen2/calculators"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/rulebook/gen2/typechart"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/moveset"
)

// Service resolves battle turns
type Service interface {
	// ResolveTurn plays one move of the attacker against the defender and
	// saves both sides in a single commit
	ResolveTurn(ctx context.Context, input *ResolveTurnInput) (*TurnOutcome, error)

	// ListActiveMoves returns the moves a combatant can currently use
	ListActiveMoves(ctx context.Context, combatantID string) ([]*moveset.ActiveMove, error)
}

type service struct {
	combatants combatants.Repository
	pokedex    pokedex.Repository
	moveset    moveset.Service
	calculator *calculators.Calculator
	conditions *conditions.Processor
	typeChart  *typechart.Resolver
	events     *events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Combatants combatants.Repository
	Pokedex    pokedex.Repository
	Moveset    moveset.Service
	Roller     dice.Roller

	// TypeChart defaults to the Gen II chart
	TypeChart *typechart.Resolver

	// Events receives a TurnResolved event, plus one per fainted side, after
	// every saved turn. Optional.
	Events *events.Bus
}

// NewService creates a new battle service
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
	if cfg.Moveset == nil {
		panic("moveset service is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	chart := cfg.TypeChart
	if chart == nil {
		chart = typechart.NewResolver(nil)
	}

	return &service{
		combatants: cfg.Combatants,
		pokedex:    cfg.Pokedex,
		moveset:    cfg.Moveset,
		calculator: calculators.NewCalculator(roller),
		conditions: conditions.NewProcessor(roller),
		typeChart:  chart,
		events:     cfg.Events,
	}
}

// ListActiveMoves returns the moves a combatant can currently use
func (s *service) ListActiveMoves(ctx context.Context, combatantID string) ([]*moveset.ActiveMove, error) {
	if combatantID == "" {
		return nil, apperr.InvalidArgument("combatant ID is required")
	}
	return s.moveset.ListActiveMoves(ctx, combatantID)
}

// side is one loaded participant of a turn
type side struct {
	combatant *pokemon.Combatant
	species   *pokemon.Species
	name      string
}

// turn carries the state of one ResolveTurn call
type turn struct {
	trainerID string
	attacker  *side
	defender  *side
	move      *pokemon.Move
	active    *moveset.ActiveMove
	slots     *moveset.ActiveSet
	outcome   *TurnOutcome
}

func (t *turn) log(format string, args ...any) {
	t.outcome.Messages = append(t.outcome.Messages, fmt.Sprintf(format, args...))
}

// ResolveTurn plays one turn
func (s *service) ResolveTurn(ctx context.Context, input *ResolveTurnInput) (*TurnOutcome, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("turn input is required")
	}
	if input.AttackerID == "" || input.DefenderID == "" {
		return nil, apperr.InvalidArgument("attacker and defender are required")
	}
	if input.AttackerID == input.DefenderID {
		return nil, apperr.InvalidArgument("a pokemon cannot attack itself")
	}

	t, err := s.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	// The slot is checked before the gate but only spent once the attacker acts
	gate, err := s.conditions.CheckPreTurn(t.attacker.combatant)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to run status checks")
	}
	for _, msg := range gate.Messages {
		t.log("%s %s", t.attacker.name, msg)
	}

	if gate.Blocked {
		t.outcome.Blocked = true
		s.residual(t, t.attacker)
		return s.finish(ctx, t, false)
	}

	if t.active != nil {
		t.active.Spend()
		t.outcome.PPMessage = t.active.PPMessage()
	}
	t.log("%s used %s!", t.attacker.name, pokemon.DisplayName(t.move.Name))

	hit, err := s.calculator.RollsHit(t.move.Accuracy)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to roll accuracy")
	}
	if !hit {
		t.outcome.Missed = true
		t.log("%s's attack missed!", t.attacker.name)
		return s.finishBoth(ctx, t)
	}

	if !t.move.DealsDamage() {
		return s.finishBoth(ctx, t)
	}

	if err := s.strike(t); err != nil {
		return nil, err
	}

	return s.finishBoth(ctx, t)
}

// prepare loads both sides, checks preconditions and selects the move
func (s *service) prepare(ctx context.Context, input *ResolveTurnInput) (*turn, error) {
	attacker, err := s.loadSide(ctx, input.AttackerID)
	if err != nil {
		return nil, err
	}
	defender, err := s.loadSide(ctx, input.DefenderID)
	if err != nil {
		return nil, err
	}

	a, d := attacker.combatant, defender.combatant
	if input.TrainerID != "" && a.OwnerID != input.TrainerID {
		return nil, apperr.PermissionDenied("you can only battle with your own pokemon").
			WithMeta("combatant_id", a.ID)
	}
	if !a.IsWild() && a.OwnerID == d.OwnerID {
		return nil, apperr.PermissionDenied("cannot target your own team").
			WithMeta("attacker_id", a.ID).
			WithMeta("defender_id", d.ID)
	}
	if a.IsFainted() {
		return nil, apperr.FailedPreconditionf("%s has fainted and cannot attack", attacker.name).
			WithMeta("combatant_id", a.ID)
	}
	if d.IsFainted() {
		return nil, apperr.FailedPreconditionf("%s has already fainted", defender.name).
			WithMeta("combatant_id", d.ID)
	}

	t := &turn{
		trainerID: input.TrainerID,
		attacker:  attacker,
		defender:  defender,
		outcome: &TurnOutcome{
			AttackerID: a.ID,
			DefenderID: d.ID,
			Multiplier: 1.0,
		},
	}

	if inline := input.Selector.Inline; inline != nil {
		move, err := inline.toMove()
		if err != nil {
			return nil, err
		}
		t.move = move
	} else {
		if err := s.selectSlot(ctx, t, input.Selector.MoveID); err != nil {
			return nil, err
		}
	}
	t.outcome.MoveID = t.move.ID
	t.outcome.MoveName = pokemon.DisplayName(t.move.Name)

	return t, nil
}

func (s *service) selectSlot(ctx context.Context, t *turn, moveID int) error {
	a := t.attacker.combatant

	persisted, err := s.combatants.GetMoveSlots(ctx, a.ID)
	if err != nil {
		return apperr.Wrap(err, "failed to load move slots")
	}

	set, err := s.moveset.ResolveActiveSlots(ctx, a, persisted)
	if err != nil {
		return err
	}

	var active *moveset.ActiveMove
	if moveID != 0 {
		active, err = set.Find(moveID)
	} else {
		active, err = set.FirstUsable()
	}
	if err != nil {
		return err
	}

	t.slots = set
	t.active = active
	t.move = active.Move
	return nil
}

func (s *service) loadSide(ctx context.Context, id string) (*side, error) {
	c, err := s.combatants.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	species, err := s.pokedex.GetSpecies(ctx, c.SpeciesID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Integrityf("species %d of combatant %s is missing", c.SpeciesID, c.ID).
				WithMeta("combatant_id", c.ID)
		}
		return nil, apperr.Wrap(err, "failed to load species")
	}

	name := pokemon.DisplayName(species.Name)
	if c.IsWild() {
		name = "Wild " + name
	}

	return &side{combatant: c, species: species, name: name}, nil
}

// strike applies a damaging move that hit. The multiplier order is
// effectiveness, then same-type bonus, then critical.
func (s *service) strike(t *turn) error {
	a, d := t.attacker.combatant, t.defender.combatant

	effectiveness := s.typeChart.EffectivenessOf(t.move.Type, t.defender.species.PrimaryType(), t.defender.species.SecondaryType())
	multiplier := effectiveness

	critical := false
	if effectiveness > 0 {
		var err error
		critical, err = s.calculator.RolledCritical()
		if err != nil {
			return apperr.Wrap(err, "failed to roll critical hit")
		}
		if critical {
			multiplier *= calculators.CriticalMultiplier
		}
	}

	attack, defense := a.Stats.SpecialAttack, d.Stats.SpecialDefense
	if t.move.IsPhysical() {
		attack, defense = a.Stats.Attack, d.Stats.Defense
	}

	damage := calculators.ComputeDamage(calculators.DamageInput{
		Level:          a.Level,
		Attack:         attack,
		Defense:        defense,
		Power:          t.move.Power,
		Multiplier:     multiplier,
		SameType:       t.attacker.species.HasType(t.move.Type),
		AttackerStatus: a.Status,
		Physical:       t.move.IsPhysical(),
	})
	dealt := d.ApplyDamage(damage)

	t.outcome.Damage = dealt
	t.outcome.Multiplier = multiplier
	t.outcome.Critical = critical
	t.outcome.EffectivenessMessage = typechart.Message(effectiveness)

	if critical {
		t.log("A critical hit!")
	}
	if t.outcome.EffectivenessMessage != "" {
		t.log("%s", t.outcome.EffectivenessMessage)
	}
	if dealt > 0 {
		t.log("%s took %d damage.", t.defender.name, dealt)
	}

	return nil
}

func (s *service) residual(t *turn, who *side) {
	for _, msg := range s.conditions.ApplyResidual(who.combatant) {
		t.log("%s %s", who.name, msg)
	}
}

// finishBoth applies both residuals, attacker first, then commits
func (s *service) finishBoth(ctx context.Context, t *turn) (*TurnOutcome, error) {
	s.residual(t, t.attacker)
	s.residual(t, t.defender)
	return s.finish(ctx, t, true)
}

// finish commits every change of the turn at once and fills in the final HP
func (s *service) finish(ctx context.Context, t *turn, defenderTouched bool) (*TurnOutcome, error) {
	a, d := t.attacker.combatant, t.defender.combatant

	changes := &combatants.Changes{}
	changes.Add(a)
	if defenderTouched {
		changes.Add(d)
	}
	if t.slots != nil {
		changes.SetMoveSlots(a.ID, t.slots.Slots())
	}

	if err := s.combatants.Commit(ctx, changes); err != nil {
		return nil, apperr.Wrap(err, "failed to save turn")
	}

	out := t.outcome
	out.AttackerHP = a.CurrentHP
	out.DefenderHP = d.CurrentHP
	out.AttackerFainted = a.IsFainted()
	out.DefenderFainted = d.IsFainted()

	if out.DefenderFainted {
		t.log("%s fainted!", t.defender.name)
	}
	if out.AttackerFainted {
		t.log("%s fainted!", t.attacker.name)
	}

	log.Printf("[BATTLE] %s vs %s: move=%s damage=%d mult=%.2f crit=%t blocked=%t missed=%t",
		a.ID, d.ID, out.MoveName, out.Damage, out.Multiplier, out.Critical, out.Blocked, out.Missed)

	s.publish(t)

	return out, nil
}

func (s *service) publish(t *turn) {
	out := t.outcome
	base := events.BaseEvent{TrainerID: t.trainerID}

	resolved := &events.TurnResolvedEvent{
		BaseEvent:  base,
		AttackerID: out.AttackerID,
		DefenderID: out.DefenderID,
		MoveName:   out.MoveName,
		Damage:     out.Damage,
		Critical:   out.Critical,
		Missed:     out.Missed,
		Blocked:    out.Blocked,
	}
	resolved.Type = events.EventTypeTurnResolved
	events.Publish(s.events, resolved)

	fainted := func(id, opponent string) {
		e := &events.CombatantFaintedEvent{BaseEvent: base, CombatantID: id, OpponentID: opponent}
		e.Type = events.EventTypeCombatantFainted
		events.Publish(s.events, e)
	}
	if out.DefenderFainted {
		fainted(out.DefenderID, out.AttackerID)
	}
	if out.AttackerFainted {
		fainted(out.AttackerID, out.DefenderID)
	}
}
