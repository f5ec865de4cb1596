package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult is the outcome of a single Roll call
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

// Face rolls one die and returns the face that came up.
func Face(r Roller, sides int) (int, error) {
	result, err := r.Roll(1, sides, 0)
	if err != nil {
		return 0, err
	}
	return result.RawTotal, nil
}

// Percent rolls a d100 and reports whether it landed at or under chance.
func Percent(r Roller, chance int) (bool, error) {
	if chance >= 100 {
		return true, nil
	}
	if chance <= 0 {
		return false, nil
	}
	face, err := Face(r, 100)
	if err != nil {
		return false, err
	}
	return face <= chance, nil
}

// OneIn reports whether a roll of a single die with the given sides came up 1.
func OneIn(r Roller, sides int) (bool, error) {
	face, err := Face(r, sides)
	if err != nil {
		return false, err
	}
	return face == 1, nil
}
