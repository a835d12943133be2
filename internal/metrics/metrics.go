package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loopync_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "loopync_ws_connections",
		Help: "Currently open websocket connections.",
	})

	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loopync_dm_messages_sent_total",
		Help: "DM messages accepted by the API.",
	})

	NotificationsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loopync_notifications_written_total",
		Help: "Notifications persisted by the dispatcher.",
	})
)
