package inventory

import (
	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

func validate(ownerID, itemKey string, qty int) error {
	if ownerID == "" {
		return apperr.InvalidArgument("owner ID is required")
	}
	if itemKey == "" {
		return apperr.InvalidArgument("item key is required")
	}
	if qty <= 0 {
		return apperr.InvalidArgumentf("quantity must be positive, got %d", qty)
	}
	return nil
}

func errInsufficient(ownerID, itemKey string, have, want int) error {
	return apperr.FailedPreconditionf("you have no %s left", itemKey).
		WithMeta("owner_id", ownerID).
		WithMeta("item", itemKey).
		WithMeta("have", have).
		WithMeta("want", want)
}
