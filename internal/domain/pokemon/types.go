package pokemon

// ElementType is the canonical (lowercase English) name of an elemental type
type ElementType string

const (
	TypeNone     ElementType = ""
	TypeNormal   ElementType = "normal"
	TypeFire     ElementType = "fire"
	TypeWater    ElementType = "water"
	TypeGrass    ElementType = "grass"
	TypeElectric ElementType = "electric"
	TypeIce      ElementType = "ice"
	TypeFighting ElementType = "fighting"
	TypePoison   ElementType = "poison"
	TypeGround   ElementType = "ground"
	TypeFlying   ElementType = "flying"
	TypePsychic  ElementType = "psychic"
	TypeBug      ElementType = "bug"
	TypeRock     ElementType = "rock"
	TypeGhost    ElementType = "ghost"
	TypeDragon   ElementType = "dragon"
	TypeDark     ElementType = "dark"
	TypeSteel    ElementType = "steel"
)

// AllTypes lists the seventeen Gen II types in chart order
var AllTypes = []ElementType{
	TypeNormal, TypeFire, TypeWater, TypeGrass, TypeElectric, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic,
	TypeBug, TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel,
}

// Stats are the five battle stats derived for an instance
type Stats struct {
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// BaseStats are the six per-species base values
type BaseStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}
