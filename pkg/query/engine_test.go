package query

import (
	"reflect"
	"testing"

	"github.com/matst80/slask-catalog/pkg/types"
)

func testItems() []types.CatalogItem {
	return []types.CatalogItem{
		{Id: 1, Name: "Lightning Bolt", Category: "Wilds of Eldraine", Tier: types.TierCommon, Tags: []string{"Near Mint", "EN"}, Price: 2.50},
		{Id: 2, Name: "Teferi, Master of Time", Category: "The Lost Caverns of Ixalan", Tier: types.TierMythic, Tags: []string{"Near Mint", "EN"}, Price: 35.99},
		{Id: 3, Name: "Counterspell", Category: "Murders at Karlov Manor", Tier: types.TierUncommon, Tags: []string{"Lightly Played", "EN"}, Price: 1.25},
	}
}

func TestIdentityFilter(t *testing.T) {
	items := testItems()
	res := Filter(items, types.FilterSpec{})
	if !reflect.DeepEqual(res, items) {
		t.Errorf("empty spec should return items unchanged, got %v", res)
	}
}

func TestIdentitySentinels(t *testing.T) {
	items := testItems()
	res := Filter(items, types.FilterSpec{Category: "all", Tier: "Todas"})
	if len(res) != len(items) {
		t.Errorf("wildcard sentinels should match everything, got %d items", len(res))
	}
}

func TestIdempotence(t *testing.T) {
	items := testItems()
	spec := types.FilterSpec{Condition: "Near Mint"}
	once := Filter(items, spec)
	twice := Filter(once, spec)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter should be idempotent, %v != %v", once, twice)
	}
}

func TestAndSemantics(t *testing.T) {
	items := testItems()
	spec := types.FilterSpec{
		Condition: "Near Mint",
		Price:     &types.NumberRange[float64]{Min: 0, Max: 3},
	}
	res := Filter(items, spec)
	if len(res) != 1 || res[0].Id != 1 {
		t.Errorf("expected only item 1 to satisfy both facets, got %v", res)
	}
}

func TestPriceRangeScenario(t *testing.T) {
	items := testItems()
	res := Filter(items, types.FilterSpec{Price: &types.NumberRange[float64]{Min: 0, Max: 3}})
	if len(res) != 2 {
		t.Fatalf("expected 2 items in [0,3], got %d", len(res))
	}
	// Stable filter keeps input order.
	if res[0].Price != 2.50 || res[1].Price != 1.25 {
		t.Errorf("expected order [2.50, 1.25], got [%v, %v]", res[0].Price, res[1].Price)
	}
}

func TestRangeSentinel(t *testing.T) {
	items := testItems()
	full := Filter(items, types.FilterSpec{Price: &types.NumberRange[float64]{Min: 1.25, Max: 35.99}})
	if !reflect.DeepEqual(full, Filter(items, types.FilterSpec{})) {
		t.Error("a range spanning the collection's min and max should equal no price filter")
	}
}

func TestEmptyInput(t *testing.T) {
	res := Filter(nil, types.FilterSpec{Query: "bolt"})
	if len(res) != 0 {
		t.Errorf("empty input should give empty result, got %v", res)
	}
}

func TestInputNotMutated(t *testing.T) {
	items := testItems()
	before := make([]types.CatalogItem, len(items))
	copy(before, items)
	Filter(items, types.FilterSpec{Query: "teferi"})
	if !reflect.DeepEqual(items, before) {
		t.Error("filter must not mutate its input")
	}
}
