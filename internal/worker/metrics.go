package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	localRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "monitor_local_records",
			Help: "Rows in the local artifact per collection.",
		},
		[]string{"collection"},
	)

	remoteRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "monitor_remote_records",
			Help: "Records in the remote collection.",
		},
		[]string{"collection"},
	)

	driftTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_drift_total",
			Help: "Count drift observations per collection.",
		},
		[]string{"collection"},
	)
)
