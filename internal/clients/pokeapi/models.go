package pokeapi

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonResponse struct {
	ID    int                 `json:"id"`
	Name  string              `json:"name"`
	Types []pokemonTypeSlot   `json:"types"`
	Stats []pokemonStat       `json:"stats"`
	Moves []pokemonMoveRecord `json:"moves"`
}

type pokemonTypeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type pokemonMoveRecord struct {
	Move                namedResource        `json:"move"`
	VersionGroupDetails []versionGroupDetail `json:"version_group_details"`
}

type versionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod namedResource `json:"move_learn_method"`
	VersionGroup    namedResource `json:"version_group"`
}

type speciesResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CaptureRate int    `json:"capture_rate"`
}

type moveResponse struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Accuracy    *int          `json:"accuracy"`
	Power       *int          `json:"power"`
	PP          *int          `json:"pp"`
	Type        namedResource `json:"type"`
	DamageClass namedResource `json:"damage_class"`
}
