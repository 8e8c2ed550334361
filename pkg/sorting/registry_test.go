package sorting

import (
	"reflect"
	"testing"

	"github.com/matst80/slask-catalog/pkg/types"
)

func testItems() []types.CatalogItem {
	return []types.CatalogItem{
		{Id: 2, Name: "Teferi, Master of Time", Category: "The Lost Caverns of Ixalan", Price: 35.99},
		{Id: 1, Name: "Lightning Bolt", Category: "Wilds of Eldraine", Price: 2.50},
		{Id: 3, Name: "Counterspell", Category: "Murders at Karlov Manor", Price: 1.25},
	}
}

func ids(items []types.CatalogItem) []types.ItemId {
	ret := make([]types.ItemId, len(items))
	for i, item := range items {
		ret[i] = item.Id
	}
	return ret
}

func TestPriceAscending(t *testing.T) {
	res := Sort(testItems(), PRICE_LOW_SORT)
	if got := ids(res); !reflect.DeepEqual(got, []types.ItemId{3, 1, 2}) {
		t.Errorf("price_low order wrong: %v", got)
	}
}

func TestPriceDescending(t *testing.T) {
	res := Sort(testItems(), PRICE_HIGH_SORT)
	if got := ids(res); !reflect.DeepEqual(got, []types.ItemId{2, 1, 3}) {
		t.Errorf("price_high order wrong: %v", got)
	}
}

func TestNameSort(t *testing.T) {
	res := Sort(testItems(), NAME_SORT)
	if got := ids(res); !reflect.DeepEqual(got, []types.ItemId{3, 1, 2}) {
		t.Errorf("name order wrong: %v", got)
	}
}

func TestNameTieBreakById(t *testing.T) {
	items := []types.CatalogItem{
		{Id: 9, Name: "Lightning Bolt", Price: 3},
		{Id: 4, Name: "Lightning Bolt", Price: 2},
	}
	res := Sort(items, NAME_SORT)
	if got := ids(res); !reflect.DeepEqual(got, []types.ItemId{4, 9}) {
		t.Errorf("equal names should order by ascending id, got %v", got)
	}
}

func TestStability(t *testing.T) {
	items := []types.CatalogItem{
		{Id: 7, Name: "A", Price: 5},
		{Id: 3, Name: "B", Price: 5},
		{Id: 5, Name: "C", Price: 5},
	}
	res := Sort(items, PRICE_LOW_SORT)
	if got := ids(res); !reflect.DeepEqual(got, []types.ItemId{7, 3, 5}) {
		t.Errorf("equal prices must keep input order, got %v", got)
	}
}

func TestUnknownKeyKeepsOrder(t *testing.T) {
	items := testItems()
	res := Sort(items, "popularity_squared")
	if !reflect.DeepEqual(ids(res), ids(items)) {
		t.Errorf("unknown key should behave as relevance, got %v", ids(res))
	}
}

func TestRelevanceKeepsOrder(t *testing.T) {
	items := testItems()
	res := Sort(items, RELEVANCE_SORT)
	if !reflect.DeepEqual(ids(res), ids(items)) {
		t.Errorf("relevance should keep input order, got %v", ids(res))
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := testItems()
	before := make([]types.CatalogItem, len(items))
	copy(before, items)
	Sort(items, PRICE_LOW_SORT)
	if !reflect.DeepEqual(items, before) {
		t.Error("sort must not reorder its input")
	}
}
