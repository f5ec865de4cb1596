package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pokebattle-bot/internal/dice"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	PokeAPI PokeAPIConfig
	Battle  BattleConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional; without it repositories are kept in memory
	URL string `env:"REDIS_URL"`
}

// PokeAPIConfig holds PokeAPI client configuration
type PokeAPIConfig struct {
	BaseURL      string        `env:"POKEAPI_URL"            envDefault:"https://pokeapi.co/api/v2"`
	Timeout      time.Duration `env:"POKEAPI_TIMEOUT"        envDefault:"5s"`
	VersionGroup string        `env:"LEARNSET_VERSION_GROUP" envDefault:"crystal"`

	// Disabled skips the client entirely; every species then uses fallback moves
	Disabled bool `env:"POKEAPI_DISABLED"`
}

// BattleConfig holds battle engine configuration
type BattleConfig struct {
	// Seed makes every roll reproducible when non-zero
	Seed uint64 `env:"RNG_SEED"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the bot cannot start without
func (c *DiscordConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

// Roller returns the dice roller the battle settings ask for
func (c *BattleConfig) Roller() dice.Roller {
	if c.Seed != 0 {
		return dice.NewSeededRoller(c.Seed)
	}
	return dice.NewRandomRoller()
}
