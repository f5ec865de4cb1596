package pokemon

// Species is immutable reference data for one pokedex entry
type Species struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Types       []ElementType `json:"types"`
	BaseStats   BaseStats     `json:"base_stats"`
	CaptureRate int           `json:"capture_rate"`
}

// PrimaryType returns the first elemental type, or TypeNone
func (s *Species) PrimaryType() ElementType {
	if s == nil || len(s.Types) == 0 {
		return TypeNone
	}
	return s.Types[0]
}

// SecondaryType returns the second elemental type, or TypeNone for mono-typed species
func (s *Species) SecondaryType() ElementType {
	if s == nil || len(s.Types) < 2 {
		return TypeNone
	}
	return s.Types[1]
}

// HasType reports whether t is one of the species' own types
func (s *Species) HasType(t ElementType) bool {
	if s == nil || t == TypeNone {
		return false
	}
	for _, own := range s.Types {
		if own == t {
			return true
		}
	}
	return false
}
