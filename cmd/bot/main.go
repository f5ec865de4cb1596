package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokebattle-bot/internal/config"
	"github.com/KirkDiggler/pokebattle-bot/internal/events"
	"github.com/KirkDiggler/pokebattle-bot/internal/handlers/discord"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	"github.com/KirkDiggler/pokebattle-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Discord.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}
	if cfg.Battle.Seed != 0 {
		log.Printf("Using seeded rolls (seed %d)", cfg.Battle.Seed)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		Roller: cfg.Battle.Roller(),
	}

	// Create PokeAPI client unless disabled
	if cfg.PokeAPI.Disabled {
		log.Println("PokeAPI disabled, every species uses fallback moves")
	} else {
		client, clientErr := pokeapi.New(&pokeapi.Config{
			BaseURL:      cfg.PokeAPI.BaseURL,
			HttpClient:   &http.Client{Timeout: 30 * time.Second},
			Timeout:      cfg.PokeAPI.Timeout,
			VersionGroup: cfg.PokeAPI.VersionGroup,
		})
		if clientErr != nil {
			log.Fatalf("Failed to create PokeAPI client: %v", clientErr)
		}
		providerConfig.PokeAPIClient = client
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis.URL)
	if redisClient != nil {
		providerConfig.CombatantRepository = combatants.NewRedis(redisClient)
		providerConfig.InventoryRepository = inventory.NewRedis(redisClient)
		log.Println("Using Redis for persistence")
	}

	// Create service provider
	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}
	serviceProvider.EventBus.SubscribeAll(events.NewLogListener())

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	// Register interaction handler
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns a live client, or nil to fall back to in-memory
// repositories
func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory repositories")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
