package query

import (
	"github.com/matst80/slask-catalog/pkg/facet"
	"github.com/matst80/slask-catalog/pkg/types"
)

// Predicates builds the active predicate list for a filter spec.
// Inactive facets (wildcards, nil ranges) contribute nothing so the
// common case of a mostly-empty spec stays a cheap pass.
func Predicates(spec types.FilterSpec) []facet.Predicate {
	predicates := make([]facet.Predicate, 0, 7)
	if spec.Query != "" {
		predicates = append(predicates, facet.TextContains(spec.Query))
	}
	if !types.Wildcard(spec.Category) {
		predicates = append(predicates, facet.CategoryIs(spec.Category))
	}
	if !types.Wildcard(spec.Tier) {
		predicates = append(predicates, facet.TierIs(spec.Tier))
	}
	if !types.Wildcard(spec.Condition) {
		predicates = append(predicates, facet.HasTag(spec.Condition))
	}
	if !types.Wildcard(spec.Language) {
		predicates = append(predicates, facet.HasTag(spec.Language))
	}
	if !types.Wildcard(spec.Status) {
		predicates = append(predicates, facet.HasTag(spec.Status))
	}
	if spec.Price != nil {
		predicates = append(predicates, facet.PriceBetween(*spec.Price))
	}
	return predicates
}

// Filter evaluates the spec's predicates as a logical AND over items,
// short-circuiting on the first failing predicate per item. The result
// is a new slice preserving the input order; the input is never
// modified. A zero spec returns a copy equal to the input.
func Filter(items []types.CatalogItem, spec types.FilterSpec) []types.CatalogItem {
	predicates := Predicates(spec)
	result := make([]types.CatalogItem, 0, len(items))
	if len(predicates) == 0 {
		return append(result, items...)
	}
	for i := range items {
		if matches(&items[i], predicates) {
			result = append(result, items[i])
		}
	}
	return result
}

func matches(item *types.CatalogItem, predicates []facet.Predicate) bool {
	for _, predicate := range predicates {
		if !predicate(item) {
			return false
		}
	}
	return true
}
