package combatants_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/stretchr/testify/suite"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo combatants.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = combatants.NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func newCombatant(id, owner string, position int) *pokemon.Combatant {
	return &pokemon.Combatant{
		ID:           id,
		OwnerID:      owner,
		SpeciesID:    155,
		Level:        5,
		CurrentHP:    20,
		MaxHP:        20,
		Stats:        pokemon.Stats{Attack: 11, Defense: 10, SpecialAttack: 12, SpecialDefense: 11, Speed: 13},
		Status:       pokemon.StatusHealthy,
		TeamPosition: position,
	}
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Success() {
	c := newCombatant("cyn", "ash", 1)

	err := s.repo.Create(s.ctx, c)
	s.Require().NoError(err)
	s.Equal(int64(1), c.Version)

	got, err := s.repo.Get(s.ctx, "cyn")
	s.Require().NoError(err)
	s.Equal(c, got)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Duplicate() {
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("cyn", "ash", 1)))

	err := s.repo.Create(s.ctx, newCombatant("cyn", "ash", 1))
	s.True(apperr.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_InvalidHP() {
	c := newCombatant("cyn", "ash", 1)
	c.CurrentHP = 21

	err := s.repo.Create(s.ctx, c)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(apperr.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, "")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_ReturnsCopy() {
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("cyn", "ash", 1)))

	got, err := s.repo.Get(s.ctx, "cyn")
	s.Require().NoError(err)
	got.CurrentHP = 0

	again, err := s.repo.Get(s.ctx, "cyn")
	s.Require().NoError(err)
	s.Equal(20, again.CurrentHP)
}

func (s *InMemoryRepositoryTestSuite) TestListByOwner() {
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("b", "ash", 2)))
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("a", "ash", 1)))
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("other", "gary", 1)))
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("wild", "", 0)))

	team, err := s.repo.ListByOwner(s.ctx, "ash")
	s.Require().NoError(err)
	s.Require().Len(team, 2)
	s.Equal("a", team[0].ID)
	s.Equal("b", team[1].ID)

	wild, err := s.repo.ListByOwner(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(wild, 1)
	s.Equal("wild", wild[0].ID)
}

func (s *InMemoryRepositoryTestSuite) TestCommit_WritesCombatantsAndSlots() {
	c := newCombatant("cyn", "ash", 1)
	s.Require().NoError(s.repo.Create(s.ctx, c))

	c.CurrentHP = 12
	changes := &combatants.Changes{}
	changes.Add(c)
	changes.SetMoveSlots("cyn", []*pokemon.MoveSlot{
		{CombatantID: "cyn", MoveID: 52, CurrentPP: 25, MaxPP: 25, Position: 2},
		{CombatantID: "cyn", MoveID: 33, CurrentPP: 34, MaxPP: 35, Position: 1},
	})

	s.Require().NoError(s.repo.Commit(s.ctx, changes))
	s.Equal(int64(2), c.Version)

	got, err := s.repo.Get(s.ctx, "cyn")
	s.Require().NoError(err)
	s.Equal(12, got.CurrentHP)
	s.Equal(int64(2), got.Version)

	slots, err := s.repo.GetMoveSlots(s.ctx, "cyn")
	s.Require().NoError(err)
	s.Require().Len(slots, 2)
	s.Equal(33, slots[0].MoveID)
	s.Equal(34, slots[0].CurrentPP)
	s.Equal(52, slots[1].MoveID)
}

func (s *InMemoryRepositoryTestSuite) TestCommit_StaleVersionWritesNothing() {
	a := newCombatant("a", "ash", 1)
	b := newCombatant("b", "", 0)
	s.Require().NoError(s.repo.Create(s.ctx, a))
	s.Require().NoError(s.repo.Create(s.ctx, b))

	// Someone else saves b first
	other, err := s.repo.Get(s.ctx, "b")
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Commit(s.ctx, &combatants.Changes{Combatants: []*pokemon.Combatant{other}}))

	a.CurrentHP = 1
	b.CurrentHP = 1
	err = s.repo.Commit(s.ctx, &combatants.Changes{Combatants: []*pokemon.Combatant{a, b}})
	s.Require().Error(err)
	s.Equal(apperr.CodeUnavailable, apperr.GetCode(err))

	got, err := s.repo.Get(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal(20, got.CurrentHP)
	s.Equal(int64(1), a.Version)
}

func (s *InMemoryRepositoryTestSuite) TestCommit_RejectsOrphanSlots() {
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("cyn", "ash", 1)))

	changes := &combatants.Changes{}
	changes.SetMoveSlots("cyn", []*pokemon.MoveSlot{{CombatantID: "cyn", MoveID: 33, CurrentPP: 35, MaxPP: 35, Position: 1}})

	err := s.repo.Commit(s.ctx, changes)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestCommit_RejectsTooManySlots() {
	c := newCombatant("cyn", "ash", 1)
	s.Require().NoError(s.repo.Create(s.ctx, c))

	slots := make([]*pokemon.MoveSlot, 0, 5)
	for i := 1; i <= 5; i++ {
		slots = append(slots, &pokemon.MoveSlot{CombatantID: "cyn", MoveID: i, CurrentPP: 10, MaxPP: 10, Position: i})
	}
	changes := &combatants.Changes{}
	changes.Add(c)
	changes.SetMoveSlots("cyn", slots)

	err := s.repo.Commit(s.ctx, changes)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestCommit_ConcurrentWritersOneWins() {
	s.Require().NoError(s.repo.Create(s.ctx, newCombatant("cyn", "ash", 1)))

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < writers; i++ {
		c, err := s.repo.Get(s.ctx, "cyn")
		s.Require().NoError(err)

		wg.Add(1)
		go func(c *pokemon.Combatant) {
			defer wg.Done()
			c.CurrentHP--
			if err := s.repo.Commit(s.ctx, &combatants.Changes{Combatants: []*pokemon.Combatant{c}}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(c)
	}
	wg.Wait()

	s.Equal(1, successes)
	got, err := s.repo.Get(s.ctx, "cyn")
	s.Require().NoError(err)
	s.Equal(19, got.CurrentHP)
}

func TestChanges_AddDeduplicates(t *testing.T) {
	c := newCombatant("cyn", "ash", 1)
	changes := &combatants.Changes{}
	changes.Add(c)
	changes.Add(c)

	if len(changes.Combatants) != 1 {
		t.Fatalf("expected one combatant, got %d", len(changes.Combatants))
	}
}
