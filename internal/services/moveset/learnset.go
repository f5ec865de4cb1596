package moveset

import (
	"context"
	"log"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/pokebattle-bot/internal/clients/pokeapi"
)

// learnsetCache memoizes learn tables per species for the process lifetime.
// Concurrent first callers share one fetch; failed fetches are not stored so
// a later call can try again.
type learnsetCache struct {
	client pokeapi.Client
	group  singleflight.Group

	mu     sync.RWMutex
	tables map[int][]*pokeapi.LearnsetEntry
}

func newLearnsetCache(client pokeapi.Client) *learnsetCache {
	return &learnsetCache{
		client: client,
		tables: make(map[int][]*pokeapi.LearnsetEntry),
	}
}

// get returns the learn table of a species, or nil when it is unavailable
func (c *learnsetCache) get(ctx context.Context, speciesID int) []*pokeapi.LearnsetEntry {
	if c.client == nil {
		return nil
	}

	c.mu.RLock()
	table, ok := c.tables[speciesID]
	c.mu.RUnlock()
	if ok {
		return table
	}

	// The fetch is shared with other callers, so one caller giving up must
	// not fail it for the rest. The client applies its own timeout.
	fetchCtx := context.WithoutCancel(ctx)

	v, err, _ := c.group.Do(strconv.Itoa(speciesID), func() (any, error) {
		c.mu.RLock()
		table, ok := c.tables[speciesID]
		c.mu.RUnlock()
		if ok {
			return table, nil
		}

		entries, err := c.client.GetLearnset(fetchCtx, speciesID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tables[speciesID] = entries
		c.mu.Unlock()
		return entries, nil
	})
	if err != nil {
		log.Printf("[MOVESET] learnset for species %d unavailable, using fallback: %v", speciesID, err)
		return nil
	}

	return v.([]*pokeapi.LearnsetEntry)
}

// pickLearned chooses up to MaxMoveSlots entries: the most recently learned
// moves at or below level. When nothing qualifies the lowest-level move is
// forced in so a non-empty table never yields an empty moveset.
func pickLearned(table []*pokeapi.LearnsetEntry, level int) []*pokeapi.LearnsetEntry {
	if len(table) == 0 {
		return nil
	}

	sorted := make([]*pokeapi.LearnsetEntry, len(table))
	copy(sorted, table)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Level != sorted[j].Level {
			return sorted[i].Level < sorted[j].Level
		}
		return sorted[i].MoveID < sorted[j].MoveID
	})

	var eligible []*pokeapi.LearnsetEntry
	for _, entry := range sorted {
		if entry.Level <= level {
			eligible = append(eligible, entry)
		}
	}
	if len(eligible) == 0 {
		return sorted[:1]
	}

	if len(eligible) > maxSlots {
		eligible = eligible[len(eligible)-maxSlots:]
	}
	return eligible
}
