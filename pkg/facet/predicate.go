package facet

import (
	"log"
	"math"

	"github.com/matst80/slask-catalog/pkg/search"
	"github.com/matst80/slask-catalog/pkg/types"
)

// Predicate is a pure test of one item against one facet selection.
// Predicates never panic for a well-formed item; a malformed selection
// degrades to MatchAll so a broken facet never hides the whole catalog.
type Predicate func(item *types.CatalogItem) bool

// MatchAll is the identity predicate, the fail-open fallback for every
// malformed facet value.
func MatchAll(*types.CatalogItem) bool { return true }

// TextContains matches the query tokens against the item name and
// description, case insensitive with accent folding. An empty query
// matches every item.
func TextContains(query string) Predicate {
	if query == "" {
		return MatchAll
	}
	return func(item *types.CatalogItem) bool {
		return search.Contains(query, item.Name, item.Description)
	}
}

// CategoryIs matches the item category exactly. The wildcard sentinels
// ("", "all", "Todas") match everything.
func CategoryIs(value string) Predicate {
	if types.Wildcard(value) {
		return MatchAll
	}
	return func(item *types.CatalogItem) bool {
		return item.Category == value
	}
}

// TierIs matches the item tier against a rarity or difficulty name. A
// name outside both ladders is treated as unconstrained.
func TierIs(value string) Predicate {
	if types.Wildcard(value) {
		return MatchAll
	}
	tier, ok := types.ParseTier(value)
	if !ok {
		log.Printf("TierIs: unknown tier %q, facet left unconstrained", value)
		return MatchAll
	}
	return func(item *types.CatalogItem) bool {
		return item.Tier == tier
	}
}

// HasTag matches condition, language and listing-status selections
// against the item tags.
func HasTag(value string) Predicate {
	if types.Wildcard(value) {
		return MatchAll
	}
	return func(item *types.CatalogItem) bool {
		return item.HasTag(value)
	}
}

// PriceBetween matches low <= price <= high, inclusive on both ends. A
// range with NaN bounds or min above max is malformed and left
// unconstrained.
func PriceBetween(r types.NumberRange[float64]) Predicate {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
		log.Printf("PriceBetween: malformed range [%v, %v], facet left unconstrained", r.Min, r.Max)
		return MatchAll
	}
	return func(item *types.CatalogItem) bool {
		return item.Price >= r.Min && item.Price <= r.Max
	}
}
