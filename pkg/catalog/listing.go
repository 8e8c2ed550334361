package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matst80/slask-catalog/pkg/types"
)

var (
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ListingDraft is the raw seller input for a new inventory listing,
// everything still as strings the way a form hands it over.
type ListingDraft struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Condition   string `json:"condition"`
	Language    string `json:"language"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}

// Build validates the draft and turns it into a catalog item with a
// generated id. Name, category and price are required; quantity defaults
// to one. New listings start in the active status.
func (d ListingDraft) Build() (types.CatalogItem, error) {
	if d.Name == "" || d.Category == "" || d.Price == "" {
		return types.CatalogItem{}, fmt.Errorf("name, category and price are required: %w", ErrMissingField)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || price < 0 {
		return types.CatalogItem{}, fmt.Errorf("price %q: %w", d.Price, ErrInvalidPrice)
	}
	quantity := 1
	if d.Quantity != "" {
		quantity, err = strconv.Atoi(strings.TrimSpace(d.Quantity))
		if err != nil || quantity < 1 {
			return types.CatalogItem{}, fmt.Errorf("quantity %q: %w", d.Quantity, ErrInvalidQuantity)
		}
	}
	language := d.Language
	if language == "" {
		language = "EN"
	}
	item := types.CatalogItem{
		Id:             types.ItemId(uuid.New().ID()),
		Name:           d.Name,
		Description:    d.Description,
		Category:       d.Category,
		Tags:           []string{language, "Activo"},
		Price:          price,
		UnitsAvailable: quantity,
	}
	if d.Condition != "" {
		item.Tags = append([]string{d.Condition}, item.Tags...)
	}
	if tier, ok := types.ParseTier(d.Tier); ok {
		item.Tier = tier
	}
	return item, nil
}

// AddListing validates the draft, appends the built item to the source
// collection and recomputes. The generated id is re-rolled on the
// unlikely collision with an existing item.
func (c *Controller) AddListing(draft ListingDraft) (types.CatalogItem, error) {
	item, err := draft.Build()
	if err != nil {
		return types.CatalogItem{}, err
	}
	for c.hasItem(item.Id) {
		item.Id = types.ItemId(uuid.New().ID())
	}
	c.source = append(c.source, item)
	c.recompute()
	return item, nil
}

func (c *Controller) hasItem(id types.ItemId) bool {
	for i := range c.source {
		if c.source[i].Id == id {
			return true
		}
	}
	return false
}
