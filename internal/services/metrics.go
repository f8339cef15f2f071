package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlacedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders that reached a terminal status, labelled by that status.",
	}, []string{"status"})

	orderPlacementSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_placement_seconds",
		Help:    "Wall time of the order placement flow, remote calls included.",
		Buckets: prometheus.DefBuckets,
	})
)
