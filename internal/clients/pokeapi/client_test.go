package pokeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	mockpokeapi "github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chikoritaJSON = `{
  "id": 152,
  "name": "chikorita",
  "types": [{"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}}],
  "stats": [
    {"base_stat": 45, "stat": {"name": "hp"}},
    {"base_stat": 49, "stat": {"name": "attack"}},
    {"base_stat": 65, "stat": {"name": "defense"}},
    {"base_stat": 49, "stat": {"name": "special-attack"}},
    {"base_stat": 65, "stat": {"name": "special-defense"}},
    {"base_stat": 45, "stat": {"name": "speed"}}
  ],
  "moves": [
    {
      "move": {"name": "razor-leaf", "url": "https://pokeapi.co/api/v2/move/75/"},
      "version_group_details": [
        {"level_learned_at": 8, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "crystal"}},
        {"level_learned_at": 6, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "red-blue"}}
      ]
    },
    {
      "move": {"name": "tackle", "url": "https://pokeapi.co/api/v2/move/33/"},
      "version_group_details": [
        {"level_learned_at": 1, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "crystal"}},
        {"level_learned_at": 3, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "crystal"}}
      ]
    },
    {
      "move": {"name": "growl", "url": "https://pokeapi.co/api/v2/move/45/"},
      "version_group_details": [
        {"level_learned_at": 1, "move_learn_method": {"name": "level-up"}, "version_group": {"name": "crystal"}}
      ]
    },
    {
      "move": {"name": "swords-dance", "url": "https://pokeapi.co/api/v2/move/14/"},
      "version_group_details": [
        {"level_learned_at": 0, "move_learn_method": {"name": "machine"}, "version_group": {"name": "crystal"}}
      ]
    }
  ]
}`

const chikoritaSpeciesJSON = `{"id": 152, "name": "chikorita", "capture_rate": 45}`

const biteJSON = `{
  "id": 44, "name": "bite", "accuracy": 100, "power": 60, "pp": 25,
  "type": {"name": "dark"}, "damage_class": {"name": "physical"}
}`

const growlJSON = `{
  "id": 45, "name": "growl", "accuracy": 100, "power": null, "pp": 40,
  "type": {"name": "normal"}, "damage_class": {"name": "status"}
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon/152", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chikoritaJSON))
	})
	mux.HandleFunc("/pokemon-species/152", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chikoritaSpeciesJSON))
	})
	mux.HandleFunc("/move/44", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(biteJSON))
	})
	mux.HandleFunc("/move/45", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(growlJSON))
	})
	mux.HandleFunc("/pokemon/500", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/pokemon/501", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server, timeout time.Duration) pokeapi.Client {
	t.Helper()

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:    server.URL,
		HttpClient: server.Client(),
		Timeout:    timeout,
	})
	require.NoError(t, err)
	return client
}

func TestClient_GetLearnset(t *testing.T) {
	client := newTestClient(t, newTestServer(t), time.Second)

	entries, err := client.GetLearnset(context.Background(), 152)
	require.NoError(t, err)

	// Sorted by (level, id), lowest crystal level-up level only
	require.Len(t, entries, 3)
	assert.Equal(t, pokeapi.LearnsetEntry{MoveID: 33, MoveName: "tackle", Level: 1}, *entries[0])
	assert.Equal(t, pokeapi.LearnsetEntry{MoveID: 45, MoveName: "growl", Level: 1}, *entries[1])
	assert.Equal(t, pokeapi.LearnsetEntry{MoveID: 75, MoveName: "razor-leaf", Level: 8}, *entries[2])
}

func TestClient_GetLearnset_OtherVersionGroup(t *testing.T) {
	server := newTestServer(t)
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:      server.URL,
		HttpClient:   server.Client(),
		VersionGroup: "red-blue",
	})
	require.NoError(t, err)

	entries, err := client.GetLearnset(context.Background(), 152)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 6, entries[0].Level)
}

func TestClient_GetLearnset_Errors(t *testing.T) {
	client := newTestClient(t, newTestServer(t), 50*time.Millisecond)

	_, err := client.GetLearnset(context.Background(), 999)
	assert.True(t, apperr.IsNotFound(err))

	_, err = client.GetLearnset(context.Background(), 500)
	assert.Equal(t, apperr.CodeUnavailable, apperr.GetCode(err))

	_, err = client.GetLearnset(context.Background(), 501)
	assert.Error(t, err, "slow responses are cut off by the timeout")
}

func TestClient_GetMove(t *testing.T) {
	client := newTestClient(t, newTestServer(t), time.Second)

	bite, err := client.GetMove(context.Background(), 44)
	require.NoError(t, err)
	assert.Equal(t, &pokemon.Move{
		ID: 44, Name: "bite", Type: pokemon.TypeDark, Category: pokemon.CategorySpecial,
		Power: 60, Accuracy: 100, PP: 25,
	}, bite)

	growl, err := client.GetMove(context.Background(), 45)
	require.NoError(t, err)
	assert.Equal(t, pokemon.CategoryStatus, growl.Category)
	assert.Zero(t, growl.Power)
}

func TestClient_GetSpecies(t *testing.T) {
	client := newTestClient(t, newTestServer(t), time.Second)

	species, err := client.GetSpecies(context.Background(), 152)
	require.NoError(t, err)

	assert.Equal(t, "chikorita", species.Name)
	assert.Equal(t, []pokemon.ElementType{pokemon.TypeGrass}, species.Types)
	assert.Equal(t, 45, species.CaptureRate)
	assert.Equal(t, pokemon.BaseStats{
		HP: 45, Attack: 49, Defense: 65, SpecialAttack: 49, SpecialDefense: 65, Speed: 45,
	}, species.BaseStats)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := pokeapi.New(nil)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestClient_ImplementsInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mockpokeapi.NewMockClient(ctrl)
	var _ pokeapi.Client = mock

	mock.EXPECT().GetLearnset(gomock.Any(), 155).Return([]*pokeapi.LearnsetEntry{{MoveID: 33, Level: 1}}, nil)

	entries, err := mock.GetLearnset(context.Background(), 155)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
