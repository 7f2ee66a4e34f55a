package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(dbPoolStats, dbOpDurationMs) }

var dbPoolStats = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "db_pool_stats",
		Help: "Current state of the database connection pool.",
	},
	[]string{"state"}, // 'total', 'idle', 'in_use'
)

var dbOpDurationMs = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "db_op_duration_ms",
		Help:    "Repository operation latency distribution in milliseconds.",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	},
	[]string{"op"},
)

func SetDBPoolStats(total, idle, inUse int32) {
	dbPoolStats.WithLabelValues("total").Set(float64(total))
	dbPoolStats.WithLabelValues("idle").Set(float64(idle))
	dbPoolStats.WithLabelValues("in_use").Set(float64(inUse))
}

// ObserveDBOp records one repository call. Use with defer:
//
//	defer metrics.ObserveDBOp("draft_save", time.Now())
func ObserveDBOp(op string, start time.Time) {
	dbOpDurationMs.WithLabelValues(norm(op)).Observe(float64(time.Since(start).Milliseconds()))
}
