package combatants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokebattle-bot/internal/domain/pokemon"
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// CombatantData represents the serialized form of a combatant in Redis
type CombatantData struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"owner_id"`
	SpeciesID      int            `json:"species_id"`
	Level          int            `json:"level"`
	Experience     int            `json:"experience"`
	CurrentHP      int            `json:"current_hp"`
	MaxHP          int            `json:"max_hp"`
	Stats          pokemon.Stats  `json:"stats"`
	Status         pokemon.Status `json:"status"`
	ConfusionTurns int            `json:"confusion_turns"`
	SleepTurns     int            `json:"sleep_turns"`
	ToxicCounter   int            `json:"toxic_counter"`
	Drained        bool           `json:"drained"`
	TeamPosition   int            `json:"team_position"`
	Version        int64          `json:"version"`
}

// MoveSlotData represents the serialized form of one move slot
type MoveSlotData struct {
	MoveID    int `json:"move_id"`
	CurrentPP int `json:"current_pp"`
	MaxPP     int `json:"max_pp"`
	Position  int `json:"position"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed combatant repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a new Redis-backed combatant repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// key generates the Redis key for a combatant
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("combatant:%s", id)
}

// movesKey generates the Redis key for a combatant's move slots
func (r *redisRepo) movesKey(id string) string {
	return fmt.Sprintf("combatant:%s:moves", id)
}

// indexKey generates the Redis key of the set listing an owner's combatants
func (r *redisRepo) indexKey(ownerID string) string {
	if ownerID == "" {
		return "wild:combatants"
	}
	return fmt.Sprintf("owner:%s:combatants", ownerID)
}

// Create stores a new combatant
func (r *redisRepo) Create(ctx context.Context, combatant *pokemon.Combatant) error {
	if err := validateCombatant(combatant); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(combatant.ID)).Result()
	if err != nil {
		return apperr.Wrap(err, "failed to check combatant existence")
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("combatant with ID '%s' already exists", combatant.ID).
			WithMeta("combatant_id", combatant.ID)
	}

	if combatant.Version == 0 {
		combatant.Version = 1
	}

	jsonData, err := json.Marshal(toCombatantData(combatant))
	if err != nil {
		return apperr.Wrap(err, "failed to marshal combatant")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(combatant.ID), string(jsonData), 0)
		pipe.SAdd(ctx, r.indexKey(combatant.OwnerID), combatant.ID)
		return nil
	})
	if err != nil {
		return apperr.Wrap(err, "failed to store combatant")
	}

	return nil
}

// Get retrieves a combatant by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*pokemon.Combatant, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("combatant ID is required")
	}

	data, err := r.getData(ctx, r.client, id)
	if err != nil {
		return nil, err
	}

	return toCombatant(data), nil
}

// ListByOwner returns an owner's combatants ordered by team position
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Combatant, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey(ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list combatants")
	}

	list := make([]*pokemon.Combatant, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			combatant, err := r.Get(gctx, id)
			if err != nil {
				return apperr.Wrapf(err, "failed to get combatant %s", id)
			}
			list[i] = combatant
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByTeamPosition(list)
	return list, nil
}

// GetMoveSlots returns the persisted slots of a combatant
func (r *redisRepo) GetMoveSlots(ctx context.Context, combatantID string) ([]*pokemon.MoveSlot, error) {
	if combatantID == "" {
		return nil, apperr.InvalidArgument("combatant ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.movesKey(combatantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*pokemon.MoveSlot{}, nil
		}
		return nil, apperr.Wrap(err, "failed to get move slots")
	}

	var data []MoveSlotData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal move slots")
	}

	slots := toMoveSlots(combatantID, data)
	sortByPosition(slots)
	return slots, nil
}

// Commit writes every change inside one MULTI/EXEC guarded by WATCH on the
// combatant keys, so a concurrent writer makes the whole commit fail.
func (r *redisRepo) Commit(ctx context.Context, changes *Changes) error {
	if err := validateChanges(changes); err != nil {
		return err
	}
	if len(changes.Combatants) == 0 {
		return nil
	}

	keys := make([]string, 0, len(changes.Combatants))
	for _, c := range changes.Combatants {
		keys = append(keys, r.key(c.ID))
	}

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored := make(map[string]*CombatantData, len(changes.Combatants))
		for _, c := range changes.Combatants {
			data, err := r.getData(ctx, tx, c.ID)
			if err != nil {
				return err
			}
			if data.Version != c.Version {
				return errVersionConflict(c.ID, data.Version, c.Version)
			}
			stored[c.ID] = data
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, c := range changes.Combatants {
				next := toCombatantData(c)
				next.Version = c.Version + 1

				jsonData, err := json.Marshal(next)
				if err != nil {
					return apperr.Wrap(err, "failed to marshal combatant")
				}
				pipe.Set(ctx, r.key(c.ID), string(jsonData), 0)

				if previous := stored[c.ID]; previous.OwnerID != c.OwnerID {
					pipe.SRem(ctx, r.indexKey(previous.OwnerID), c.ID)
					pipe.SAdd(ctx, r.indexKey(c.OwnerID), c.ID)
				}
			}

			for _, id := range sortedSlotOwners(changes.MoveSlots) {
				jsonData, err := json.Marshal(toMoveSlotData(changes.MoveSlots[id]))
				if err != nil {
					return apperr.Wrap(err, "failed to marshal move slots")
				}
				pipe.Set(ctx, r.movesKey(id), string(jsonData), 0)
			}
			return nil
		})
		return err
	}, keys...)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			log.Printf("[COMBATANTS] commit lost a race on %v", keys)
			return apperr.Unavailable("combatant modified concurrently")
		}
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Wrap(err, "failed to commit combatant changes")
	}

	for _, c := range changes.Combatants {
		c.Version++
	}
	return nil
}

func (r *redisRepo) getData(ctx context.Context, client redis.Cmdable, id string) (*CombatantData, error) {
	jsonData, err := client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFoundf("combatant '%s' not found", id).
				WithMeta("combatant_id", id)
		}
		return nil, apperr.Wrap(err, "failed to get combatant")
	}

	var data CombatantData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, apperr.Wrap(err, "failed to unmarshal combatant")
	}

	return &data, nil
}

func toCombatantData(c *pokemon.Combatant) *CombatantData {
	return &CombatantData{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		SpeciesID:      c.SpeciesID,
		Level:          c.Level,
		Experience:     c.Experience,
		CurrentHP:      c.CurrentHP,
		MaxHP:          c.MaxHP,
		Stats:          c.Stats,
		Status:         c.Status,
		ConfusionTurns: c.Volatile.ConfusionTurns,
		SleepTurns:     c.Volatile.SleepTurns,
		ToxicCounter:   c.Volatile.ToxicCounter,
		Drained:        c.Volatile.Drained,
		TeamPosition:   c.TeamPosition,
		Version:        c.Version,
	}
}

func toCombatant(data *CombatantData) *pokemon.Combatant {
	status := data.Status
	if status == "" {
		status = pokemon.StatusHealthy
	}

	return &pokemon.Combatant{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		SpeciesID:  data.SpeciesID,
		Level:      data.Level,
		Experience: data.Experience,
		CurrentHP:  data.CurrentHP,
		MaxHP:      data.MaxHP,
		Stats:      data.Stats,
		Status:     status,
		Volatile: pokemon.Volatile{
			ConfusionTurns: data.ConfusionTurns,
			SleepTurns:     data.SleepTurns,
			ToxicCounter:   data.ToxicCounter,
			Drained:        data.Drained,
		},
		TeamPosition: data.TeamPosition,
		Version:      data.Version,
	}
}

func toMoveSlotData(slots []*pokemon.MoveSlot) []MoveSlotData {
	data := make([]MoveSlotData, len(slots))
	for i, s := range slots {
		data[i] = MoveSlotData{
			MoveID:    s.MoveID,
			CurrentPP: s.CurrentPP,
			MaxPP:     s.MaxPP,
			Position:  s.Position,
		}
	}
	return data
}

func toMoveSlots(combatantID string, data []MoveSlotData) []*pokemon.MoveSlot {
	slots := make([]*pokemon.MoveSlot, len(data))
	for i, d := range data {
		slots[i] = &pokemon.MoveSlot{
			CombatantID: combatantID,
			MoveID:      d.MoveID,
			CurrentPP:   d.CurrentPP,
			MaxPP:       d.MaxPP,
			Position:    d.Position,
		}
	}
	return slots
}
