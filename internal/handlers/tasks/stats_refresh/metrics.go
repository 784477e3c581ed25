package stats_refresh

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deliveriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "quickship_deliveries_total",
			Help: "Total number of deliveries known to the system.",
		},
	)

	deliveriesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quickship_deliveries_by_status",
			Help: "Number of deliveries per current status.",
		},
		[]string{"status"},
	)
)
