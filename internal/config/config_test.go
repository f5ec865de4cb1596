package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokebattle-bot/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.PokeAPI.Timeout)
	assert.Equal(t, "crystal", cfg.PokeAPI.VersionGroup)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("POKEAPI_TIMEOUT", "250ms")
	t.Setenv("LEARNSET_VERSION_GROUP", "gold-silver")
	t.Setenv("RNG_SEED", "42")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.Discord.Validate())
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 250*time.Millisecond, cfg.PokeAPI.Timeout)
	assert.Equal(t, "gold-silver", cfg.PokeAPI.VersionGroup)
	assert.Equal(t, uint64(42), cfg.Battle.Seed)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("POKEAPI_TIMEOUT", "soon")

	_, err := config.Load()
	assert.ErrorContains(t, err, "parse env:")
}

func TestDiscordConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DiscordConfig
		wantErr string
	}{
		{name: "missing token", cfg: config.DiscordConfig{AppID: "app"}, wantErr: "DISCORD_TOKEN is required"},
		{name: "missing app", cfg: config.DiscordConfig{Token: "token"}, wantErr: "DISCORD_APP_ID is required"},
		{name: "complete", cfg: config.DiscordConfig{Token: "token", AppID: "app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBattleConfig_SeededRollerIsReproducible(t *testing.T) {
	cfg := config.BattleConfig{Seed: 7}
	a, b := cfg.Roller(), cfg.Roller()

	for i := 0; i < 20; i++ {
		ra, err := a.Roll(1, 100, 0)
		require.NoError(t, err)
		rb, err := b.Roll(1, 100, 0)
		require.NoError(t, err)
		assert.Equal(t, ra.Total, rb.Total)
	}
}
