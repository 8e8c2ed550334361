// Package data ships the built-in mock collections the browsing
// surfaces start from until a real store feeds them.
package data

import (
	_ "embed"
	"fmt"

	"github.com/matst80/slask-catalog/pkg/common/jsoncompat"
	"github.com/matst80/slask-catalog/pkg/types"
)

var (
	//go:embed cards.json
	cardsRaw []byte
	//go:embed inventory.json
	inventoryRaw []byte
	//go:embed courses.json
	coursesRaw []byte
	//go:embed quizzes.json
	quizzesRaw []byte
)

func decode(name string, raw []byte) ([]types.CatalogItem, error) {
	items := make([]types.CatalogItem, 0, 8)
	if err := jsoncompat.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding %s dataset: %w", name, err)
	}
	return items, nil
}

// MarketplaceCards returns a fresh copy of the marketplace listing
// collection.
func MarketplaceCards() ([]types.CatalogItem, error) {
	return decode("cards", cardsRaw)
}

// SellerInventory returns a fresh copy of the seller inventory
// collection, the one carrying sold/view counts and market reference
// prices.
func SellerInventory() ([]types.CatalogItem, error) {
	return decode("inventory", inventoryRaw)
}

// Courses returns a fresh copy of the course library.
func Courses() ([]types.CatalogItem, error) {
	return decode("courses", coursesRaw)
}

// Quizzes returns a fresh copy of the quiz collection, expressed as
// catalog items so the same query engine serves it.
func Quizzes() ([]types.CatalogItem, error) {
	return decode("quizzes", quizzesRaw)
}

// Dataset looks a collection up by name, the keys the browser command
// accepts.
func Dataset(name string) ([]types.CatalogItem, error) {
	switch name {
	case "cards", "marketplace":
		return MarketplaceCards()
	case "inventory":
		return SellerInventory()
	case "courses":
		return Courses()
	case "quizzes":
		return Quizzes()
	}
	return nil, fmt.Errorf("unknown dataset %q", name)
}
