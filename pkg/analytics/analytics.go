package analytics

import "github.com/matst80/slask-catalog/pkg/types"

// Deviation thresholds in percent. Above +5 a listing is priced above
// market, below -5 under market, in between it tracks the market. Fixed
// constants, not configurable per call.
const (
	AboveMarketThresholdPct = 5.0
	BelowMarketThresholdPct = -5.0
)

// DeriveMetrics computes the per-item derived record. Total function:
// every division has an explicit zero or unavailable policy, so no NaN
// ever reaches a caller.
func DeriveMetrics(item *types.CatalogItem) types.DerivedMetrics {
	m := types.DerivedMetrics{
		Revenue: item.Price * float64(item.UnitsSold),
	}
	if total := item.UnitsSold + item.UnitsAvailable; total > 0 {
		m.SellThroughRate = float64(item.UnitsSold) / float64(total)
	}
	if item.ReferencePrice > 0 {
		pct := (item.Price - item.ReferencePrice) / item.ReferencePrice * 100
		m.PriceDeviationPct = pct
		m.Deviation = Classify(pct)
	} else {
		m.Deviation = types.DeviationUnavailable
	}
	return m
}

// Classify buckets a known deviation percentage against the fixed
// thresholds.
func Classify(pct float64) types.Deviation {
	switch {
	case pct > AboveMarketThresholdPct:
		return types.DeviationAboveMarket
	case pct < BelowMarketThresholdPct:
		return types.DeviationBelowMarket
	default:
		return types.DeviationAtMarket
	}
}

// Aggregate computes the collection wide snapshot from the full
// collection. No incremental accumulation, collections are small and
// full recomputation keeps it trivially correct.
func Aggregate(items []types.CatalogItem) types.AggregateSnapshot {
	snapshot := types.AggregateSnapshot{ItemCount: len(items)}
	var ratingSum float64
	for i := range items {
		item := &items[i]
		snapshot.TotalValue += item.Price * float64(item.UnitsAvailable)
		snapshot.TotalSold += item.UnitsSold
		snapshot.TotalViews += item.ViewCount
		ratingSum += item.Rating
	}
	if snapshot.ItemCount > 0 {
		snapshot.MeanRating = ratingSum / float64(snapshot.ItemCount)
	}
	return snapshot
}
