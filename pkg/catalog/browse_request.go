package catalog

import (
	"log"
	"net/url"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/matst80/slask-catalog/pkg/sorting"
	"github.com/matst80/slask-catalog/pkg/types"
)

// BrowseRequest is a full filter and sort selection as a presentation
// layer hands it over, decodable from query-string style values.
type BrowseRequest struct {
	types.FilterSpec
	Sort string `json:"sort" schema:"sort,default:relevance"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseBrowseRequest decodes facet selections and the sort key from
// url.Values. Malformed values fail open: an unparseable price bound is
// dropped, unknown keys are ignored, and the request always comes back
// usable.
func ParseBrowseRequest(values url.Values) (*BrowseRequest, error) {
	request := &BrowseRequest{Sort: sorting.RELEVANCE_SORT}
	if err := decoder.Decode(request, values); err != nil {
		return nil, err
	}
	request.FilterSpec.Price = priceRangeFromValues(values)
	return request, nil
}

func priceRangeFromValues(values url.Values) *types.NumberRange[float64] {
	minRaw, hasMin := firstValue(values, "min")
	maxRaw, hasMax := firstValue(values, "max")
	if !hasMin && !hasMax {
		return nil
	}
	r := &types.NumberRange[float64]{Min: 0, Max: maxPrice}
	if hasMin {
		if v, err := strconv.ParseFloat(minRaw, 64); err == nil {
			r.Min = v
		} else {
			log.Printf("browse request: ignoring malformed min %q", minRaw)
		}
	}
	if hasMax {
		if v, err := strconv.ParseFloat(maxRaw, 64); err == nil {
			r.Max = v
		} else {
			log.Printf("browse request: ignoring malformed max %q", maxRaw)
		}
	}
	return r
}

// maxPrice caps an open-ended range when only a lower bound arrives.
const maxPrice = 1 << 40

func firstValue(values url.Values, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 || v[0] == "" {
		return "", false
	}
	return v[0], true
}

// Apply replaces the controller's whole selection with the decoded one.
// A browse request is a complete selection, not a patch, so prior facets
// do not leak through.
func (r *BrowseRequest) Apply(c *Controller) {
	spec := r.FilterSpec
	c.ClearFilters()
	c.SetFilter(types.FilterPatch{
		Query:     &spec.Query,
		Category:  &spec.Category,
		Tier:      &spec.Tier,
		Condition: &spec.Condition,
		Language:  &spec.Language,
		Status:    &spec.Status,
		Price:     spec.Price,
	})
	c.SetSort(r.Sort)
}
