package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokebattle-bot/internal/config"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/combatants"
	"github.com/KirkDiggler/pokebattle-bot/internal/repositories/inventory"
	"github.com/KirkDiggler/pokebattle-bot/internal/services"
	"github.com/KirkDiggler/pokebattle-bot/internal/services/roster"
)

func main() {
	speciesFlag := flag.String("species", "16,19,161,163,165,167", "comma separated species ids to spawn")
	level := flag.Int("level", 3, "level of every spawned pokemon")
	each := flag.Int("each", 1, "how many of each species to spawn")
	workers := flag.Int("workers", 4, "concurrent spawns")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Redis.URL == "" {
		log.Fatal("REDIS_URL is required; wild pokemon spawned in memory would vanish on exit")
	}

	speciesIDs, err := parseSpecies(*speciesFlag)
	if err != nil {
		log.Fatalf("Invalid -species: %v", err)
	}

	ctx := context.Background()

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	providerConfig := &services.ProviderConfig{
		CombatantRepository: combatants.NewRedis(client),
		InventoryRepository: inventory.NewRedis(client),
	}
	if !cfg.PokeAPI.Disabled {
		apiClient, clientErr := pokeapi.New(&pokeapi.Config{
			BaseURL:      cfg.PokeAPI.BaseURL,
			HttpClient:   &http.Client{Timeout: 30 * time.Second},
			Timeout:      cfg.PokeAPI.Timeout,
			VersionGroup: cfg.PokeAPI.VersionGroup,
		})
		if clientErr != nil {
			log.Fatalf("Failed to create PokeAPI client: %v", clientErr)
		}
		providerConfig.PokeAPIClient = apiClient
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	var (
		mu      sync.Mutex
		spawned []*roster.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for _, id := range speciesIDs {
		for n := 0; n < *each; n++ {
			g.Go(func() error {
				member, spawnErr := provider.RosterService.SpawnWild(gctx, &roster.SpawnWildInput{
					SpeciesID: id,
					Level:     *level,
				})
				if spawnErr != nil {
					return fmt.Errorf("species %d: %w", id, spawnErr)
				}

				mu.Lock()
				spawned = append(spawned, member)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		log.Printf("Stopped after an error: %v", err)
	}

	fmt.Printf("Spawned %d wild pokemon:\n", len(spawned))
	for _, m := range spawned {
		fmt.Printf("  %s: %s Lv.%d (%d HP)\n", m.Combatant.ID, m.Name(), m.Combatant.Level, m.Combatant.MaxHP)
	}
}

func parseSpecies(list string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a species id", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no species given")
	}
	return ids, nil
}
