package unity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var syncOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "unity_sync_outcomes_total",
		Help: "Per-record sync outcomes by collection.",
	},
	[]string{"collection", "outcome"},
)
