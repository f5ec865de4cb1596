package moveset

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	mockpokeapi "github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func entryIDs(entries []*pokeapi.LearnsetEntry) []int {
	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.MoveID
	}
	return ids
}

func TestPickLearned(t *testing.T) {
	table := []*pokeapi.LearnsetEntry{
		{MoveID: 98, Level: 19},
		{MoveID: 43, Level: 1},
		{MoveID: 52, Level: 12},
		{MoveID: 33, Level: 1},
		{MoveID: 108, Level: 6},
	}

	tests := []struct {
		name  string
		table []*pokeapi.LearnsetEntry
		level int
		want  []int
	}{
		{name: "only level one moves", table: table, level: 5, want: []int{33, 43}},
		{name: "exactly four", table: table, level: 12, want: []int{33, 43, 108, 52}},
		{name: "keeps most recent four", table: table, level: 50, want: []int{43, 108, 52, 98}},
		{
			name:  "forces lowest when nothing qualifies",
			table: []*pokeapi.LearnsetEntry{{MoveID: 52, Level: 12}, {MoveID: 98, Level: 19}},
			level: 3,
			want:  []int{52},
		},
		{name: "empty table", table: nil, level: 10, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickLearned(tt.table, tt.level)

			assert.LessOrEqual(t, len(got), maxSlots)
			assert.Equal(t, tt.want, entryIDs(got))
		})
	}
}

func TestFallbackNames(t *testing.T) {
	assert.Equal(t, []string{"ember", "smokescreen", "tackle", "growl"}, fallbackNames("fire"))
	assert.Equal(t, []string{"tackle", "growl"}, fallbackNames(""))
}

func TestLearnsetCache_FetchOutlivesCallerCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mockpokeapi.NewMockClient(ctrl)
	client.EXPECT().GetLearnset(gomock.Any(), 155).
		DoAndReturn(func(ctx context.Context, speciesID int) ([]*pokeapi.LearnsetEntry, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []*pokeapi.LearnsetEntry{{MoveID: 33, Level: 1}}, nil
		}).
		Times(1)

	cache := newLearnsetCache(client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table := cache.get(ctx, 155)
	require.Len(t, table, 1)
	assert.Equal(t, 33, table[0].MoveID)

	// Stored for the next caller
	assert.Len(t, cache.get(context.Background(), 155), 1)
}
