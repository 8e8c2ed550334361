package types

import "strings"

type FieldNumberValue interface {
	~int | ~float64
}

type NumberRange[V FieldNumberValue] struct {
	Min V `json:"min"`
	Max V `json:"max"`
}

// Wildcard reports whether a categorical facet value means
// "unconstrained". The marketplace uses "all", the course library
// "Todas"; an absent value decodes to the empty string.
func Wildcard(value string) bool {
	return value == "" || strings.EqualFold(value, "all") || strings.EqualFold(value, "todas")
}

// FilterSpec holds every active facet selection for one catalog view.
// The zero value is the identity filter and matches every item.
type FilterSpec struct {
	Query     string                `json:"query,omitempty" schema:"query"`
	Category  string                `json:"category,omitempty" schema:"category"`
	Tier      string                `json:"tier,omitempty" schema:"tier"`
	Condition string                `json:"condition,omitempty" schema:"condition"`
	Language  string                `json:"language,omitempty" schema:"language"`
	Status    string                `json:"status,omitempty" schema:"status"`
	Price     *NumberRange[float64] `json:"price,omitempty" schema:"-"`
}

// FilterPatch is a partial FilterSpec, nil fields keep their prior value
// when merged.
type FilterPatch struct {
	Query     *string               `json:"query,omitempty"`
	Category  *string               `json:"category,omitempty"`
	Tier      *string               `json:"tier,omitempty"`
	Condition *string               `json:"condition,omitempty"`
	Language  *string               `json:"language,omitempty"`
	Status    *string               `json:"status,omitempty"`
	Price     *NumberRange[float64] `json:"price,omitempty"`
}

func (f *FilterSpec) Merge(patch FilterPatch) {
	if patch.Query != nil {
		f.Query = *patch.Query
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Tier != nil {
		f.Tier = *patch.Tier
	}
	if patch.Condition != nil {
		f.Condition = *patch.Condition
	}
	if patch.Language != nil {
		f.Language = *patch.Language
	}
	if patch.Status != nil {
		f.Status = *patch.Status
	}
	if patch.Price != nil {
		r := *patch.Price
		f.Price = &r
	}
}
