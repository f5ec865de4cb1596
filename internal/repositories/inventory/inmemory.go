package inventory

import (
	"context"
	"sync"

	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the inventory repository
type InMemoryRepository struct {
	mu    sync.Mutex
	items map[string]map[string]int
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		items: make(map[string]map[string]int),
	}
}

// Get returns the quantity of one item
func (r *InMemoryRepository) Get(ctx context.Context, ownerID, itemKey string) (int, error) {
	if ownerID == "" || itemKey == "" {
		return 0, apperr.InvalidArgument("owner ID and item key are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.items[ownerID][itemKey], nil
}

// List returns every held item
func (r *InMemoryRepository) List(ctx context.Context, ownerID string) (map[string]int, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[string]int)
	for key, qty := range r.items[ownerID] {
		if qty > 0 {
			result[key] = qty
		}
	}
	return result, nil
}

// Credit adds qty units
func (r *InMemoryRepository) Credit(ctx context.Context, ownerID, itemKey string, qty int) (int, error) {
	if err := validate(ownerID, itemKey, qty); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.items[ownerID] == nil {
		r.items[ownerID] = make(map[string]int)
	}
	r.items[ownerID][itemKey] += qty
	return r.items[ownerID][itemKey], nil
}

// Debit removes qty units
func (r *InMemoryRepository) Debit(ctx context.Context, ownerID, itemKey string, qty int) (int, error) {
	if err := validate(ownerID, itemKey, qty); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	have := r.items[ownerID][itemKey]
	if have < qty {
		return have, errInsufficient(ownerID, itemKey, have, qty)
	}
	r.items[ownerID][itemKey] = have - qty
	return have - qty, nil
}
