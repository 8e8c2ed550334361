package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_queries_total",
		Help: "The total number of view reads served",
	})
	noRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_recomputes_total",
		Help: "The total number of view recomputations",
	})
	noRejectedLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcatalog_rejected_loads_total",
		Help: "The total number of collection loads rejected by validation",
	})
	totalItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slaskcatalog_items_total",
		Help: "The total number of items in the loaded collection",
	})
)

func Query()     { noQueries.Inc() }
func Recompute() { noRecomputes.Inc() }

func RejectedLoad() { noRejectedLoads.Inc() }

func SetItemCount(count int) { totalItems.Set(float64(count)) }
