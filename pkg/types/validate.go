package types

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateId   = errors.New("duplicate item id")
	ErrNegativePrice = errors.New("negative price")
	ErrNegativeCount = errors.New("negative unit count")
)

// ValidateCollection checks the invariants a loaded collection must hold:
// unique ids, non-negative prices and unit counts. A duplicate id is the
// one condition that must surface instead of degrading, metrics keyed by
// id would otherwise collide.
func ValidateCollection(items []CatalogItem) error {
	seen := make(map[ItemId]struct{}, len(items))
	for i := range items {
		item := &items[i]
		if _, ok := seen[item.Id]; ok {
			return fmt.Errorf("item %d (%s): %w", item.Id, item.Name, ErrDuplicateId)
		}
		seen[item.Id] = struct{}{}
		if item.Price < 0 || item.ReferencePrice < 0 {
			return fmt.Errorf("item %d (%s): %w", item.Id, item.Name, ErrNegativePrice)
		}
		if item.UnitsAvailable < 0 || item.UnitsSold < 0 || item.ViewCount < 0 {
			return fmt.Errorf("item %d (%s): %w", item.Id, item.Name, ErrNegativeCount)
		}
	}
	return nil
}
