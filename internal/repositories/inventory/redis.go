package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// debitRetries bounds how often Debit retries after losing a WATCH race
const debitRetries = 3

// redisRepo implements the Repository interface using a Redis hash per trainer
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed inventory repository
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

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(ownerID string) string {
	return fmt.Sprintf("inventory:%s", ownerID)
}

// Get returns the quantity of one item
func (r *redisRepo) Get(ctx context.Context, ownerID, itemKey string) (int, error) {
	if ownerID == "" || itemKey == "" {
		return 0, apperr.InvalidArgument("owner ID and item key are required")
	}
	return r.quantity(ctx, r.client, ownerID, itemKey)
}

// List returns every held item
func (r *redisRepo) List(ctx context.Context, ownerID string) (map[string]int, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	raw, err := r.client.HGetAll(ctx, r.key(ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list inventory")
	}

	result := make(map[string]int, len(raw))
	for key, value := range raw {
		qty, err := strconv.Atoi(value)
		if err != nil {
			return nil, apperr.Wrapf(err, "corrupt quantity for %s", key)
		}
		if qty > 0 {
			result[key] = qty
		}
	}
	return result, nil
}

// Credit adds qty units
func (r *redisRepo) Credit(ctx context.Context, ownerID, itemKey string, qty int) (int, error) {
	if err := validate(ownerID, itemKey, qty); err != nil {
		return 0, err
	}

	total, err := r.client.HIncrBy(ctx, r.key(ownerID), itemKey, int64(qty)).Result()
	if err != nil {
		return 0, apperr.Wrap(err, "failed to credit item")
	}
	return int(total), nil
}

// Debit removes qty units. The read and the decrement run under WATCH so two
// concurrent debits can never both spend the last unit.
func (r *redisRepo) Debit(ctx context.Context, ownerID, itemKey string, qty int) (int, error) {
	if err := validate(ownerID, itemKey, qty); err != nil {
		return 0, err
	}

	key := r.key(ownerID)
	var remaining int

	for attempt := 0; attempt < debitRetries; attempt++ {
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			have, err := r.quantity(ctx, tx, ownerID, itemKey)
			if err != nil {
				return err
			}
			if have < qty {
				remaining = have
				return errInsufficient(ownerID, itemKey, have, qty)
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HIncrBy(ctx, key, itemKey, int64(-qty))
				return nil
			})
			remaining = have - qty
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			if _, ok := apperr.As(err); ok {
				return remaining, err
			}
			return 0, apperr.Wrap(err, "failed to debit item")
		}
		return remaining, nil
	}

	return 0, apperr.Unavailable("inventory modified concurrently").
		WithMeta("owner_id", ownerID).
		WithMeta("item", itemKey)
}

func (r *redisRepo) quantity(ctx context.Context, client redis.Cmdable, ownerID, itemKey string) (int, error) {
	qty, err := client.HGet(ctx, r.key(ownerID), itemKey).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperr.Wrap(err, "failed to get item quantity")
	}
	return qty, nil
}
