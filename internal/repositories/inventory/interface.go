package inventory

//go:generate mockgen -destination=mock/mock.go -package=mockinventory -source=interface.go

import (
	"context"
)

// Repository tracks how many of each item a trainer carries
type Repository interface {
	// Get returns the quantity of one item, zero when the trainer has none
	Get(ctx context.Context, ownerID, itemKey string) (int, error)

	// List returns every item the trainer holds with a positive quantity
	List(ctx context.Context, ownerID string) (map[string]int, error)

	// Credit adds qty units and returns the new quantity
	Credit(ctx context.Context, ownerID, itemKey string, qty int) (int, error)

	// Debit removes qty units atomically and returns what is left. It fails
	// with a failed precondition error when the trainer holds fewer than qty.
	Debit(ctx context.Context, ownerID, itemKey string, qty int) (int, error)
}
