// Package metrics exposes the wallet core's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Derivations counts key derivations by chain family and outcome.
	Derivations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "velvet_wallet_derivations_total",
		Help: "Number of HD key derivations performed, by chain family and outcome.",
	}, []string{"family", "outcome"})

	// Classifications counts safety verdicts by level.
	Classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "velvet_wallet_safety_classifications_total",
		Help: "Number of counterparty safety classifications, by verdict.",
	}, []string{"level"})

	// HistoryDegradations counts classifier runs that fell back to
	// blocklist-only classification.
	HistoryDegradations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "velvet_wallet_safety_history_degradations_total",
		Help: "Number of classifications degraded to blocklist-only because history was unavailable.",
	})

	// CacheUpserts counts cache writes by kind and outcome.
	CacheUpserts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "velvet_wallet_cache_upserts_total",
		Help: "Number of persisted-cache upserts, by kind and outcome.",
	}, []string{"kind", "outcome"})
)
