package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quickship_notifications_dispatched_total",
		Help: "Total delivery status notifications processed by the notifier worker.",
	},
	[]string{"status", "result"},
)
