package inventory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreditAndDebit(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewInMemoryRepository()

	total, err := repo.Credit(ctx, "ash", "poke-ball", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	left, err := repo.Debit(ctx, "ash", "poke-ball", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, left)

	qty, err := repo.Get(ctx, "ash", "poke-ball")
	require.NoError(t, err)
	assert.Equal(t, 4, qty)

	items, err := repo.List(ctx, "ash")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"poke-ball": 4}, items)
}

func TestInMemoryRepository_DebitInsufficient(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewInMemoryRepository()

	_, err := repo.Debit(ctx, "ash", "ultra-ball", 1)
	require.Error(t, err)
	assert.True(t, apperr.IsFailedPrecondition(err))

	_, err = repo.Credit(ctx, "ash", "ultra-ball", 1)
	require.NoError(t, err)
	_, err = repo.Debit(ctx, "ash", "ultra-ball", 2)
	assert.True(t, apperr.IsFailedPrecondition(err))

	qty, err := repo.Get(ctx, "ash", "ultra-ball")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

func TestInMemoryRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewInMemoryRepository()

	tests := []struct {
		name  string
		owner string
		item  string
		qty   int
	}{
		{name: "missing owner", owner: "", item: "poke-ball", qty: 1},
		{name: "missing item", owner: "ash", item: "", qty: 1},
		{name: "zero quantity", owner: "ash", item: "poke-ball", qty: 0},
		{name: "negative quantity", owner: "ash", item: "poke-ball", qty: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Credit(ctx, tt.owner, tt.item, tt.qty)
			assert.True(t, apperr.IsInvalidArgument(err))
			_, err = repo.Debit(ctx, tt.owner, tt.item, tt.qty)
			assert.True(t, apperr.IsInvalidArgument(err))
		})
	}
}

func TestInMemoryRepository_ConcurrentDebitsNeverOverspend(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewInMemoryRepository()
	_, err := repo.Credit(ctx, "ash", "poke-ball", 3)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Debit(ctx, "ash", "poke-ball", 1); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), successes.Load())
	qty, err := repo.Get(ctx, "ash", "poke-ball")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}
