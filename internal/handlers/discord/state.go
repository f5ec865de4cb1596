package discord

import (
	"fmt"
	"strconv"
	"strings"

	apperr "github.com/KirkDiggler/pokebattle-bot/internal/errors"
)

const turnButtonPrefix = "poke:turn:"

// maxCustomIDLength is Discord's limit on component custom IDs
const maxCustomIDLength = 100

// TurnButton is the turn a move button replays
type TurnButton struct {
	AttackerID string
	DefenderID string
	MoveID     int
}

// Encode packs the button into a custom ID
func (b *TurnButton) Encode() (string, error) {
	if strings.Contains(b.AttackerID, ":") || strings.Contains(b.DefenderID, ":") {
		return "", fmt.Errorf("combatant ids cannot contain ':'")
	}

	id := fmt.Sprintf("%s%s:%s:%d", turnButtonPrefix, b.AttackerID, b.DefenderID, b.MoveID)
	if len(id) > maxCustomIDLength {
		return "", fmt.Errorf("custom id is %d characters, limit is %d", len(id), maxCustomIDLength)
	}
	return id, nil
}

// DecodeTurnButton unpacks a custom ID made by Encode
func DecodeTurnButton(customID string) (*TurnButton, error) {
	rest, ok := strings.CutPrefix(customID, turnButtonPrefix)
	if !ok {
		return nil, apperr.InvalidArgumentf("not a move button: %q", customID)
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return nil, apperr.InvalidArgumentf("malformed move button: %q", customID)
	}

	moveID, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, apperr.InvalidArgumentf("malformed move id in button: %q", customID)
	}

	return &TurnButton{AttackerID: parts[0], DefenderID: parts[1], MoveID: moveID}, nil
}
