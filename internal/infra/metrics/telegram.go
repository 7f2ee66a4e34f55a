package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(telegramUpdatesTotal) }

var telegramUpdatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "telegram_updates_total",
		Help: "Incoming Telegram updates by event kind.",
	},
	[]string{"kind"},
)

func IncTelegramUpdate(kind string) {
	telegramUpdatesTotal.WithLabelValues(norm(kind)).Inc()
}
