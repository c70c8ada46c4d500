package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filesRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filevault_files_registered_total",
		Help: "Number of file records registered.",
	})

	filesDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filevault_files_deleted_total",
		Help: "Number of file records deleted by their owner.",
	})

	shareLinksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filevault_share_links_created_total",
		Help: "Number of share links minted.",
	})

	// result is one of ok, expired, not_found.
	shareResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "filevault_share_resolutions_total",
		Help: "Share link resolutions by outcome.",
	}, []string{"result"})

	sweepRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "filevault_sweep_runs_total",
		Help: "Expired link sweeps by status.",
	}, []string{"status"})

	sweepLinksExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "filevault_sweep_links_expired_total",
		Help: "Share links deactivated by the sweeper.",
	})

	sweepDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "filevault_sweep_duration_seconds",
		Help:    "Duration of one sweep in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	})

	storageFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "filevault_storage_faults_total",
		Help: "Store failures surfaced at the service boundary, by operation.",
	}, []string{"op"})
)
