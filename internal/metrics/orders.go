package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total orders successfully placed",
	})
	OrderPlacementFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_placement_failures_total",
		Help: "Total order placement transactions rolled back",
	})
	CatalogCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_requests_total",
		Help: "Catalog read cache lookups by result (hit/miss)",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(OrdersPlacedTotal, OrderPlacementFailuresTotal, CatalogCacheTotal)
}
