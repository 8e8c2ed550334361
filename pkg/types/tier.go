package types

import (
	"strings"

	"github.com/matst80/slask-catalog/pkg/common/jsoncompat"
)

// Tier is the ordered quality level of an item, card rarity in the
// marketplace and difficulty in the course library. The two ladders share
// one ordering so a single facet can serve both catalog kinds.
type Tier uint8

const (
	TierNone Tier = iota
	TierCommon
	TierUncommon
	TierRare
	TierMythic
)

const (
	TierBeginner     = TierCommon
	TierIntermediate = TierUncommon
	TierAdvanced     = TierRare
)

var tierNames = map[Tier]string{
	TierCommon:   "Common",
	TierUncommon: "Uncommon",
	TierRare:     "Rare",
	TierMythic:   "Mythic",
}

var tierLookup = map[string]Tier{
	"common":       TierCommon,
	"uncommon":     TierUncommon,
	"rare":         TierRare,
	"mythic":       TierMythic,
	"principiante": TierBeginner,
	"beginner":     TierBeginner,
	"intermedio":   TierIntermediate,
	"intermediate": TierIntermediate,
	"avanzado":     TierAdvanced,
	"advanced":     TierAdvanced,
}

// ParseTier maps a rarity or difficulty name to its tier. The second
// return is false for names outside both ladders.
func ParseTier(name string) (Tier, bool) {
	t, ok := tierLookup[strings.ToLower(name)]
	return t, ok
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return ""
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return jsoncompat.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	var name string
	if err := jsoncompat.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseTier(name)
	if !ok {
		*t = TierNone
		return nil
	}
	*t = parsed
	return nil
}
