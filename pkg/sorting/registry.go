package sorting

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/matst80/slask-catalog/pkg/types"
)

const (
	RELEVANCE_SORT  = "relevance"
	PRICE_LOW_SORT  = "price_low"
	PRICE_HIGH_SORT = "price_high"
	NAME_SORT       = "name"
	CATEGORY_SORT   = "category"
)

// Comparator is a total order over catalog items. Comparators never
// mutate the items they compare.
type Comparator func(a, b *types.CatalogItem) int

var sortMethods = map[string]Comparator{
	PRICE_LOW_SORT:  priceAscending,
	PRICE_HIGH_SORT: priceDescending,
	NAME_SORT:       byName,
	CATEGORY_SORT:   byCategory,
}

// Keys lists the registered sort keys, relevance included.
func Keys() []string {
	keys := make([]string, 0, len(sortMethods)+1)
	keys = append(keys, RELEVANCE_SORT)
	for key := range sortMethods {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Sort returns a new, stably ordered slice for the given key. The
// relevance key and any unknown key keep the input order unchanged.
// The input slice is never reordered.
func Sort(items []types.CatalogItem, key string) []types.CatalogItem {
	result := make([]types.CatalogItem, len(items))
	copy(result, items)
	comparator, ok := sortMethods[key]
	if !ok {
		return result
	}
	slices.SortStableFunc(result, func(a, b types.CatalogItem) int {
		return comparator(&a, &b)
	})
	return result
}

func priceAscending(a, b *types.CatalogItem) int {
	return cmp.Compare(a.Price, b.Price)
}

func priceDescending(a, b *types.CatalogItem) int {
	return cmp.Compare(b.Price, a.Price)
}

// The lexicographic comparators use a fixed-locale collator so ordering
// is locale aware yet deterministic across machines. The collator is not
// safe for concurrent use, hence the mutex.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Spanish)
)

func compareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

func byName(a, b *types.CatalogItem) int {
	if c := compareStrings(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Id, b.Id)
}

func byCategory(a, b *types.CatalogItem) int {
	if c := compareStrings(a.Category, b.Category); c != 0 {
		return c
	}
	return cmp.Compare(a.Id, b.Id)
}
