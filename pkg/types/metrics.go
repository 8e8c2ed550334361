package types

import "github.com/matst80/slask-catalog/pkg/common/jsoncompat"

// Deviation classifies an item price against its reference market price.
// Unavailable is a real state of its own so callers can never mistake
// "no reference price" for "exactly at market".
type Deviation uint8

const (
	DeviationUnavailable Deviation = iota
	DeviationBelowMarket
	DeviationAtMarket
	DeviationAboveMarket
)

var deviationNames = map[Deviation]string{
	DeviationUnavailable: "unavailable",
	DeviationBelowMarket: "below market",
	DeviationAtMarket:    "at market",
	DeviationAboveMarket: "above market",
}

func (d Deviation) String() string {
	if name, ok := deviationNames[d]; ok {
		return name
	}
	return "unavailable"
}

func (d Deviation) MarshalJSON() ([]byte, error) {
	return jsoncompat.Marshal(d.String())
}

// DerivedMetrics is the discardable per-item record computed on demand,
// keyed by item id and never persisted. PriceDeviationPct is only
// meaningful when Deviation is not DeviationUnavailable.
type DerivedMetrics struct {
	Revenue           float64   `json:"revenue"`
	SellThroughRate   float64   `json:"sellThroughRate"`
	PriceDeviationPct float64   `json:"priceDeviationPct,omitempty"`
	Deviation         Deviation `json:"deviation"`
}

// AggregateSnapshot holds collection wide totals, recomputed in full on
// every source change.
type AggregateSnapshot struct {
	TotalValue float64 `json:"totalValue"`
	TotalSold  int     `json:"totalSold"`
	TotalViews int     `json:"totalViews"`
	ItemCount  int     `json:"itemCount"`
	MeanRating float64 `json:"meanRating"`
}
