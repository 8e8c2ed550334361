// Command browser is a small terminal front for the catalog core: it
// loads one of the built-in datasets, applies a query-string style
// selection and prints the resulting view and aggregates as JSON.
//
//	browser -data cards -select "query=bolt&sort=price_high&min=0&max=3"
package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/matst80/slask-catalog/pkg/catalog"
	"github.com/matst80/slask-catalog/pkg/common/jsoncompat"
	"github.com/matst80/slask-catalog/pkg/data"
	"github.com/matst80/slask-catalog/pkg/types"
)

type output struct {
	View       catalog.View            `json:"view"`
	Aggregates types.AggregateSnapshot `json:"aggregates"`
	Metrics    []types.DerivedMetrics  `json:"metrics,omitempty"`
}

func main() {
	dataset := flag.String("data", "cards", "dataset to browse (cards, inventory, courses, quizzes)")
	selection := flag.String("select", "", "query-string selection, e.g. query=bolt&sort=price_low&min=0&max=3")
	withMetrics := flag.Bool("metrics", false, "include per-item derived metrics for the visible items")
	flag.Parse()

	items, err := data.Dataset(*dataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	controller := catalog.NewController()
	if err := controller.LoadCatalog(items); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	values, err := url.ParseQuery(*selection)
	if err != nil {
		log.Fatalf("Failed to parse selection: %v", err)
	}
	request, err := catalog.ParseBrowseRequest(values)
	if err != nil {
		log.Fatalf("Failed to decode selection: %v", err)
	}
	request.Apply(controller)

	out := output{
		View:       controller.GetView(),
		Aggregates: controller.GetAggregates(),
	}
	if *withMetrics {
		out.Metrics = make([]types.DerivedMetrics, 0, out.View.Count)
		for _, item := range out.View.Items {
			if m, ok := controller.GetItemMetrics(item.Id); ok {
				out.Metrics = append(out.Metrics, m)
			}
		}
	}

	encoded, err := jsoncompat.Marshal(out)
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(encoded))
}
