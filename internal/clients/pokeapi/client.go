package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

const (
	DefaultBaseURL      = "https://pokeapi.co/api/v2"
	DefaultTimeout      = 5 * time.Second
	DefaultVersionGroup = "crystal"

	learnMethodLevelUp = "level-up"
)

type client struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	versionGroup string
}

type Config struct {
	BaseURL      string
	HttpClient   *http.Client
	Timeout      time.Duration
	VersionGroup string
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}

	c := &client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   cfg.HttpClient,
		timeout:      cfg.Timeout,
		versionGroup: cfg.VersionGroup,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.versionGroup == "" {
		c.versionGroup = DefaultVersionGroup
	}

	return c, nil
}

func (c *client) GetLearnset(ctx context.Context, speciesID int) ([]*LearnsetEntry, error) {
	var resp pokemonResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon/%d", speciesID), &resp); err != nil {
		return nil, err
	}

	lowest := make(map[int]*LearnsetEntry)
	for _, record := range resp.Moves {
		moveID, err := idFromURL(record.Move.URL)
		if err != nil {
			log.Printf("[POKEAPI] skipping move %q of species %d: %v", record.Move.Name, speciesID, err)
			continue
		}

		for _, detail := range record.VersionGroupDetails {
			if detail.VersionGroup.Name != c.versionGroup || detail.MoveLearnMethod.Name != learnMethodLevelUp {
				continue
			}
			existing, ok := lowest[moveID]
			if !ok || detail.LevelLearnedAt < existing.Level {
				lowest[moveID] = &LearnsetEntry{
					MoveID:   moveID,
					MoveName: record.Move.Name,
					Level:    detail.LevelLearnedAt,
				}
			}
		}
	}

	entries := make([]*LearnsetEntry, 0, len(lowest))
	for _, entry := range lowest {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Level != entries[j].Level {
			return entries[i].Level < entries[j].Level
		}
		return entries[i].MoveID < entries[j].MoveID
	})

	return entries, nil
}

func (c *client) GetMove(ctx context.Context, moveID int) (*pokemon.Move, error) {
	var resp moveResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/move/%d", moveID), &resp); err != nil {
		return nil, err
	}

	return apiMoveToMove(&resp), nil
}

// GetSpecies combines the pokemon and pokemon-species resources, fetched
// concurrently.
func (c *client) GetSpecies(ctx context.Context, speciesID int) (*pokemon.Species, error) {
	var (
		mon     pokemonResponse
		species speciesResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, fmt.Sprintf("/pokemon/%d", speciesID), &mon)
	})
	g.Go(func() error {
		return c.getJSON(gctx, fmt.Sprintf("/pokemon-species/%d", speciesID), &species)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return apiPokemonToSpecies(&mon, &species), nil
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperr.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, fmt.Sprintf("failed to fetch %s", path))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperr.NotFoundf("%s not found", path)
	case resp.StatusCode != http.StatusOK:
		return apperr.Newf(apperr.CodeUnavailable, "unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrapf(err, "failed to decode %s", path)
	}
	return nil
}

// idFromURL extracts the trailing numeric id of a resource url such as
// https://pokeapi.co/api/v2/move/33/
func idFromURL(url string) (int, error) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, fmt.Errorf("no id in %q", url)
	}
	return strconv.Atoi(trimmed[idx+1:])
}
