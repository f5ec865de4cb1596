package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.FailedPrecondition("no PP left").WithMeta("move_id", 33)

	wrapped := apperr.Wrap(base, "failed to consume slot")

	assert.Equal(t, apperr.CodeFailedPrecondition, wrapped.Code)
	assert.Equal(t, 33, wrapped.Meta["move_id"])
	assert.True(t, apperr.IsFailedPrecondition(wrapped))
	assert.Equal(t, "failed to consume slot: no PP left", wrapped.Error())
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := apperr.Wrap(stderrors.New("boom"), "redis")

	assert.Equal(t, apperr.CodeUnknown, wrapped.Code)
	assert.False(t, apperr.IsUsage(wrapped))
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
}

func TestIsUsage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "invalid argument", err: apperr.InvalidArgument("bad"), want: true},
		{name: "not found", err: apperr.NotFound("missing"), want: true},
		{name: "failed precondition", err: apperr.FailedPrecondition("fainted"), want: true},
		{name: "permission denied", err: apperr.PermissionDenied("own team"), want: true},
		{name: "integrity", err: apperr.Integrityf("species %d missing", 1), want: false},
		{name: "wrapped usage", err: fmt.Errorf("outer: %w", apperr.NotFound("x")), want: true},
		{name: "plain", err: stderrors.New("plain"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.IsUsage(tt.err))
		})
	}
}

func TestIsIntegrity(t *testing.T) {
	err := apperr.Wrap(apperr.Integrityf("species %d missing", 152), "resolve turn")

	assert.True(t, apperr.IsIntegrity(err))
	assert.Equal(t, apperr.CodeIntegrity, apperr.GetCode(err))
}

func TestAs_FindsWrappedError(t *testing.T) {
	base := apperr.NotFound("combatant 'cyn' not found").WithMeta("combatant_id", "cyn")

	found, ok := apperr.As(fmt.Errorf("commit: %w", base))
	assert.True(t, ok)
	assert.Same(t, base, found)

	_, ok = apperr.As(stderrors.New("plain"))
	assert.False(t, ok)
}
