package pokedex_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/pokedex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRepository_Starters(t *testing.T) {
	repo, err := pokedex.NewSeededRepository()
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []int{152, 155, 158} {
		species, err := repo.GetSpecies(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 45, species.CaptureRate)
		assert.Len(t, species.Types, 1)
	}

	cyndaquil, err := repo.GetSpecies(ctx, 155)
	require.NoError(t, err)
	assert.Equal(t, pokemon.TypeFire, cyndaquil.PrimaryType())
}

func TestSeededRepository_FallbackMovesResolve(t *testing.T) {
	repo, err := pokedex.NewSeededRepository()
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{
		"ember", "water-gun", "vine-whip", "thunder-shock", "powder-snow", "karate-chop",
		"poison-sting", "mud-slap", "gust", "confusion", "leech-life", "rock-throw",
		"lick", "twister", "bite", "metal-claw", "scratch", "tackle", "growl",
	} {
		_, err := repo.GetMoveByName(ctx, name)
		assert.NoError(t, err, name)
	}

	tackle, err := repo.GetMove(ctx, 33)
	require.NoError(t, err)
	assert.Equal(t, "tackle", tackle.Name)
	assert.Equal(t, pokemon.CategoryPhysical, tackle.Category)
}

func TestInMemoryRepository_GetMoveByName_Normalizes(t *testing.T) {
	repo := pokedex.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.PutMove(ctx, &pokemon.Move{ID: 22, Name: "vine-whip", Type: pokemon.TypeGrass}))

	move, err := repo.GetMoveByName(ctx, " Vine Whip ")
	require.NoError(t, err)
	assert.Equal(t, 22, move.ID)
}

func TestInMemoryRepository_NotFound(t *testing.T) {
	repo := pokedex.NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetSpecies(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))

	_, err = repo.GetMove(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))

	_, err = repo.GetMoveByName(ctx, "splash")
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemoryRepository_PutSpecies_Validates(t *testing.T) {
	repo := pokedex.NewInMemoryRepository()
	ctx := context.Background()

	assert.Error(t, repo.PutSpecies(ctx, nil))
	assert.Error(t, repo.PutSpecies(ctx, &pokemon.Species{ID: 1}))
	assert.Error(t, repo.PutSpecies(ctx, &pokemon.Species{ID: 0, Types: []pokemon.ElementType{pokemon.TypeFire}}))
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := pokedex.NewInMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.PutSpecies(ctx, &pokemon.Species{ID: 19, Name: "rattata", Types: []pokemon.ElementType{pokemon.TypeNormal}}))

	first, err := repo.GetSpecies(ctx, 19)
	require.NoError(t, err)
	first.Types[0] = pokemon.TypeGhost

	second, err := repo.GetSpecies(ctx, 19)
	require.NoError(t, err)
	assert.Equal(t, pokemon.TypeNormal, second.Types[0])

	all, err := repo.ListSpecies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
