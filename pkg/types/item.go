package types

import (
	"slices"
	"strings"
)

type ItemId uint32

// CatalogItem is one sellable or listable unit, a marketplace card or a
// course. Items are supplied whole at load time and never mutated by the
// core; everything derived lives in DerivedMetrics.
type CatalogItem struct {
	Id          ItemId   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Tier        Tier     `json:"tier,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Price       float64  `json:"price"`

	// Optional metrics, present depending on catalog kind.
	UnitsAvailable int     `json:"stock,omitempty"`
	UnitsSold      int     `json:"sold,omitempty"`
	ViewCount      int     `json:"views,omitempty"`
	ReferencePrice float64 `json:"marketPrice,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
}

// HasTag reports whether the item carries the given tag (condition,
// language or listing status). Comparison is case insensitive since the
// status facet arrives lowercased from selection inputs.
func (item *CatalogItem) HasTag(tag string) bool {
	return slices.ContainsFunc(item.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}
