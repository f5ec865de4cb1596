package pokemon

// Status is the single persistent condition a combatant can carry
type Status string

const (
	StatusHealthy       Status = "healthy"
	StatusBurned        Status = "burned"
	StatusPoisoned      Status = "poisoned"
	StatusBadlyPoisoned Status = "badly_poisoned"
	StatusAsleep        Status = "asleep"
	StatusParalyzed     Status = "paralyzed"
	StatusFrozen        Status = "frozen"
)

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusHealthy, StatusBurned, StatusPoisoned, StatusBadlyPoisoned,
		StatusAsleep, StatusParalyzed, StatusFrozen:
		return true
	}
	return false
}

// Volatile holds counters that live alongside the persistent status
type Volatile struct {
	ConfusionTurns int  `json:"confusion_turns"`
	SleepTurns     int  `json:"sleep_turns"`
	ToxicCounter   int  `json:"toxic_counter"`
	Drained        bool `json:"drained"`
}
