package pokemon

import "strings"

// GuaranteedCaptureBonus is the ball bonus of the tier that never fails
const GuaranteedCaptureBonus = 255.0

// CaptureItem is a ball usable in a capture attempt
type CaptureItem struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Bonus float64 `json:"bonus"`
}

var captureItems = []CaptureItem{
	{Key: "poke-ball", Name: "Poke Ball", Bonus: 1.0},
	{Key: "great-ball", Name: "Great Ball", Bonus: 1.5},
	{Key: "ultra-ball", Name: "Ultra Ball", Bonus: 2.0},
	{Key: "master-ball", Name: "Master Ball", Bonus: GuaranteedCaptureBonus},
}

// itemAliases maps alternate spellings onto item keys
var itemAliases = map[string]string{
	"pokeball":   "poke-ball",
	"super-ball": "great-ball",
	"superball":  "great-ball",
	"greatball":  "great-ball",
	"ultraball":  "ultra-ball",
	"masterball": "master-ball",
}

// NormalizeItemKey folds an item name into its catalog key
func NormalizeItemKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, "_", "-")
	if alias, ok := itemAliases[key]; ok {
		return alias
	}
	return key
}

// LookupCaptureItem resolves a user-supplied item name
func LookupCaptureItem(name string) (CaptureItem, bool) {
	key := NormalizeItemKey(name)
	for _, item := range captureItems {
		if item.Key == key {
			return item, true
		}
	}
	return CaptureItem{}, false
}

// CaptureItems returns the known capture items
func CaptureItems() []CaptureItem {
	out := make([]CaptureItem, len(captureItems))
	copy(out, captureItems)
	return out
}
