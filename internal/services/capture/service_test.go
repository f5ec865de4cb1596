package capture_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockdice "github.com/KirkDiggler/pokebattle-bot/internal/dice/mock"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	mockcombatants "github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants/mock"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	mockinventory "github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory/mock"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/capture"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	roller     *mockdice.ManualMockRoller
	dex        *pokedex.InMemoryRepository
	combatants combatants.Repository
	inventory  inventory.Repository
	service    capture.Service
	captured   []*events.CombatantCapturedEvent
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.roller = mockdice.NewManualMockRoller()

	dex, err := pokedex.NewSeededRepository()
	s.Require().NoError(err)
	s.dex = dex
	s.combatants = combatants.NewInMemoryRepository()
	s.inventory = inventory.NewInMemoryRepository()

	s.captured = nil
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeCombatantCaptured, &events.ListenerFunc{
		Name: "test",
		Callback: func(e events.Event) error {
			s.captured = append(s.captured, e.(*events.CombatantCapturedEvent))
			return nil
		},
	})

	s.service = capture.NewService(&capture.ServiceConfig{
		Combatants: s.combatants,
		Pokedex:    s.dex,
		Inventory:  s.inventory,
		Roller:     s.roller,
		Events:     bus,
	})

	// Ash has a starter in position 0 and five poke balls
	s.create("cyn", "ash", 155, 0)
	_, err = s.inventory.Credit(s.ctx, "ash", "poke-ball", 5)
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) create(id, owner string, speciesID, position int) *pokemon.Combatant {
	c := &pokemon.Combatant{
		ID:           id,
		OwnerID:      owner,
		SpeciesID:    speciesID,
		Level:        5,
		CurrentHP:    30,
		MaxHP:        30,
		Stats:        pokemon.Stats{Attack: 10, Defense: 10, SpecialAttack: 10, SpecialDefense: 10, Speed: 10},
		Status:       pokemon.StatusHealthy,
		TeamPosition: position,
	}
	s.Require().NoError(s.combatants.Create(s.ctx, c))
	return c
}

func (s *ServiceTestSuite) balls(key string) int {
	qty, err := s.inventory.Get(s.ctx, "ash", key)
	s.Require().NoError(err)
	return qty
}

func (s *ServiceTestSuite) throw(target, item string) (*capture.Result, error) {
	return s.service.ResolveCapture(s.ctx, &capture.ResolveCaptureInput{
		TrainerID: "ash",
		TargetID:  target,
		ItemName:  item,
	})
}

func (s *ServiceTestSuite) TestCaptureSuccess() {
	s.create("chiko", "", 152, 0)
	s.roller.SetRolls([]int{15}) // full HP, rate 45: catch value 15

	result, err := s.throw("chiko", "Poke Ball")
	s.Require().NoError(err)

	s.True(result.Captured)
	s.Equal(1, result.TeamPosition)
	s.Equal(4, result.ItemsRemaining)
	s.InDelta(15.0/256.0, result.Probability, 1e-9)
	s.Equal("Gotcha! Chikorita was caught!", result.Message)

	caught, err := s.combatants.Get(s.ctx, "chiko")
	s.Require().NoError(err)
	s.Equal("ash", caught.OwnerID)
	s.Equal(1, caught.TeamPosition)

	team, err := s.combatants.ListByOwner(s.ctx, "ash")
	s.Require().NoError(err)
	s.Len(team, 2)

	s.Require().Len(s.captured, 1)
	s.Equal("ash", s.captured[0].TrainerID)
	s.Equal("chiko", s.captured[0].CombatantID)
	s.Equal("poke-ball", s.captured[0].ItemKey)
	s.Equal(1, s.captured[0].TeamPosition)
}

func (s *ServiceTestSuite) TestCaptureFailureStillSpendsBall() {
	s.create("chiko", "", 152, 0)
	s.roller.SetRolls([]int{16})

	result, err := s.throw("chiko", "poke-ball")
	s.Require().NoError(err)

	s.False(result.Captured)
	s.Equal("Oh no! The wild Chikorita broke free!", result.Message)
	s.Equal(4, s.balls("poke-ball"))

	still, err := s.combatants.Get(s.ctx, "chiko")
	s.Require().NoError(err)
	s.True(still.IsWild())
	s.Equal(int64(1), still.Version)
	s.Empty(s.captured)
}

func (s *ServiceTestSuite) TestSleepingTargetIsEasier() {
	c := s.create("chiko", "", 152, 0)
	c.Status = pokemon.StatusAsleep
	s.Require().NoError(s.combatants.Commit(s.ctx, &combatants.Changes{Combatants: []*pokemon.Combatant{c}}))
	s.roller.SetRolls([]int{25})

	result, err := s.throw("chiko", "poke-ball")
	s.Require().NoError(err)
	s.True(result.Captured)
}

func (s *ServiceTestSuite) TestMasterBallNeverRolls() {
	s.create("steelix", "", 208, 0)
	_, err := s.inventory.Credit(s.ctx, "ash", "master-ball", 1)
	s.Require().NoError(err)

	result, err := s.throw("steelix", "Master Ball")
	s.Require().NoError(err)

	s.True(result.Captured)
	s.Equal(0, result.ItemsRemaining)
	s.Equal(0, s.roller.Remaining())
}

func (s *ServiceTestSuite) TestSuperBallAlias() {
	s.create("chiko", "", 152, 0)
	_, err := s.inventory.Credit(s.ctx, "ash", "great-ball", 1)
	s.Require().NoError(err)
	s.roller.SetRolls([]int{22}) // 15 * 1.5

	result, err := s.throw("chiko", "Super Ball")
	s.Require().NoError(err)
	s.True(result.Captured)
	s.Equal(0, s.balls("great-ball"))
}

func (s *ServiceTestSuite) TestRejectedAttemptsSpendNothing() {
	s.create("chiko", "", 152, 0)
	s.create("garys", "gary", 158, 0)
	down := s.create("down", "", 16, 0)
	down.CurrentHP = 0
	s.Require().NoError(s.combatants.Commit(s.ctx, &combatants.Changes{Combatants: []*pokemon.Combatant{down}}))

	tests := []struct {
		name   string
		target string
		item   string
		check  func(error) bool
	}{
		{name: "unknown item", target: "chiko", item: "rock", check: apperr.IsInvalidArgument},
		{name: "unknown target", target: "nobody", item: "poke-ball", check: apperr.IsNotFound},
		{name: "already yours", target: "cyn", item: "poke-ball", check: apperr.IsFailedPrecondition},
		{name: "another trainer's", target: "garys", item: "poke-ball", check: func(err error) bool { return apperr.Is(err, apperr.CodePermissionDenied) }},
		{name: "fainted", target: "down", item: "poke-ball", check: apperr.IsFailedPrecondition},
		{name: "no balls of that kind", target: "chiko", item: "ultra-ball", check: apperr.IsFailedPrecondition},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.throw(tt.target, tt.item)
			s.Require().Error(err)
			s.True(tt.check(err), err.Error())
			s.True(apperr.IsUsage(err))
			s.Equal(5, s.balls("poke-ball"))
		})
	}
}

func (s *ServiceTestSuite) TestFailedCommitRefundsBall() {
	repo := mockcombatants.NewMockRepository(s.ctrl)
	svc := capture.NewService(&capture.ServiceConfig{
		Combatants: repo,
		Pokedex:    s.dex,
		Inventory:  s.inventory,
		Roller:     s.roller,
	})

	wild := &pokemon.Combatant{ID: "chiko", SpeciesID: 152, Level: 5, CurrentHP: 30, MaxHP: 30, Status: pokemon.StatusHealthy, Version: 1}
	repo.EXPECT().Get(gomock.Any(), "chiko").Return(wild, nil)
	repo.EXPECT().ListByOwner(gomock.Any(), "ash").Return(nil, nil)
	repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(apperr.Unavailable("combatant modified concurrently"))
	s.roller.SetRolls([]int{1})

	_, err := svc.ResolveCapture(s.ctx, &capture.ResolveCaptureInput{TrainerID: "ash", TargetID: "chiko", ItemName: "poke-ball"})
	s.Require().Error(err)
	s.Equal(5, s.balls("poke-ball"))
}

func (s *ServiceTestSuite) TestInventoryErrorStopsBeforeRoll() {
	inv := mockinventory.NewMockRepository(s.ctrl)
	svc := capture.NewService(&capture.ServiceConfig{
		Combatants: s.combatants,
		Pokedex:    s.dex,
		Inventory:  inv,
		Roller:     s.roller,
	})
	s.create("chiko", "", 152, 0)
	inv.EXPECT().Debit(gomock.Any(), "ash", "poke-ball", 1).Return(0, errors.New("redis down"))

	_, err := svc.ResolveCapture(s.ctx, &capture.ResolveCaptureInput{TrainerID: "ash", TargetID: "chiko", ItemName: "poke-ball"})
	s.Error(err)
}

func TestFirstFreePosition(t *testing.T) {
	team := func(positions ...int) []*pokemon.Combatant {
		out := make([]*pokemon.Combatant, len(positions))
		for i, p := range positions {
			out[i] = &pokemon.Combatant{TeamPosition: p}
		}
		return out
	}

	tests := []struct {
		name string
		team []*pokemon.Combatant
		want int
	}{
		{name: "empty team", team: nil, want: 0},
		{name: "gap", team: team(0, 2, 3), want: 1},
		{name: "next slot", team: team(0, 1), want: 2},
		{name: "full team goes to storage", team: team(0, 1, 2, 3, 4, 5), want: 6},
		{name: "storage after highest", team: team(0, 1, 2, 3, 4, 5, 9), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capture.FirstFreePosition(tt.team))
		})
	}
}

func (s *ServiceTestSuite) TestListBalls() {
	_, err := s.inventory.Credit(s.ctx, "ash", "ultra-ball", 2)
	s.Require().NoError(err)

	balls, err := s.service.ListBalls(s.ctx, "ash")
	s.Require().NoError(err)
	s.Require().Len(balls, 4)

	s.Equal("poke-ball", balls[0].Item.Key)
	s.Equal(5, balls[0].Quantity)
	s.Equal(0, balls[1].Quantity)
	s.Equal("ultra-ball", balls[2].Item.Key)
	s.Equal(2, balls[2].Quantity)

	_, err = s.service.ListBalls(s.ctx, "")
	s.True(apperr.IsInvalidArgument(err))
}
