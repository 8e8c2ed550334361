package catalog

import (
	"github.com/matst80/slask-catalog/pkg/analytics"
	"github.com/matst80/slask-catalog/pkg/query"
	"github.com/matst80/slask-catalog/pkg/sorting"
	"github.com/matst80/slask-catalog/pkg/tracking"
	"github.com/matst80/slask-catalog/pkg/types"
)

// View is the filtered and sorted subset currently visible, together
// with its size.
type View struct {
	Items []types.CatalogItem `json:"items"`
	Count int                 `json:"count"`
}

// Controller owns the state of one catalog browsing session: the source
// collection, the active filter spec and the sort key. Every setter
// recomputes the visible view and the aggregates synchronously before it
// returns, so readers always observe a consistent pair. One controller
// per simultaneous view; instances are not shared across goroutines.
type Controller struct {
	source     []types.CatalogItem
	spec       types.FilterSpec
	sortKey    string
	visible    []types.CatalogItem
	aggregates types.AggregateSnapshot
}

func NewController() *Controller {
	return &Controller{
		sortKey: sorting.RELEVANCE_SORT,
		visible: []types.CatalogItem{},
	}
}

// LoadCatalog validates and replaces the source collection. On a
// validation failure the previous collection and view stay intact and
// the error is returned to the caller, the one condition that surfaces
// instead of degrading.
func (c *Controller) LoadCatalog(items []types.CatalogItem) error {
	if err := types.ValidateCollection(items); err != nil {
		tracking.RejectedLoad()
		return err
	}
	c.source = make([]types.CatalogItem, len(items))
	copy(c.source, items)
	c.recompute()
	return nil
}

// SetFilter merges the patch into the current spec; facets absent from
// the patch keep their prior value.
func (c *Controller) SetFilter(patch types.FilterPatch) {
	c.spec.Merge(patch)
	c.recompute()
}

// ClearFilters resets to the identity spec that matches every item.
func (c *Controller) ClearFilters() {
	c.spec = types.FilterSpec{}
	c.recompute()
}

func (c *Controller) SetSort(key string) {
	c.sortKey = key
	c.recompute()
}

// GetView returns a copy of the visible ordered subset; callers cannot
// alias controller state through it.
func (c *Controller) GetView() View {
	tracking.Query()
	items := make([]types.CatalogItem, len(c.visible))
	copy(items, c.visible)
	return View{Items: items, Count: len(items)}
}

// GetAggregates returns the snapshot over the full source collection,
// filters do not narrow it.
func (c *Controller) GetAggregates() types.AggregateSnapshot {
	return c.aggregates
}

// GetItemMetrics derives the per-item record on demand. The second
// return is false when the id is not in the source collection.
func (c *Controller) GetItemMetrics(id types.ItemId) (types.DerivedMetrics, bool) {
	for i := range c.source {
		if c.source[i].Id == id {
			return analytics.DeriveMetrics(&c.source[i]), true
		}
	}
	return types.DerivedMetrics{}, false
}

// FilterSpec returns the active filter selection.
func (c *Controller) FilterSpec() types.FilterSpec {
	return c.spec
}

// SortKey returns the active sort key.
func (c *Controller) SortKey() string {
	return c.sortKey
}

func (c *Controller) recompute() {
	c.visible = sorting.Sort(query.Filter(c.source, c.spec), c.sortKey)
	c.aggregates = analytics.Aggregate(c.source)
	tracking.SetItemCount(len(c.source))
	tracking.Recompute()
}
