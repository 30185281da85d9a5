// Package metrics defines and registers all custom Prometheus metrics for the
// social exchange API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exchange"

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsCreatedTotal counts accounts opened through the signup route.
// Label:
//   - role: "user", "investor", or "admin"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created through signup, by role.",
	},
	[]string{"role"},
)

// FollowsTotal counts follow edges successfully created.
var FollowsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "follows_total",
		Help:      "Total number of follow edges created.",
	},
)

// ── Trade metrics ─────────────────────────────────────────────────────────────

// TradesTotal counts completed trades.
// Labels:
//   - market: "shares" or "currency"
//   - action: "BUY" or "SELL"
var TradesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trades_total",
		Help:      "Total number of completed trades, by market and action.",
	},
	[]string{"market", "action"},
)

// TradeErrorsTotal counts rejected trades.
// Labels:
//   - market: "shares" or "currency"
//   - reason: error kind ("validation", "not_found", "forbidden", "conflict", "storage", "internal")
var TradeErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_errors_total",
		Help:      "Total number of rejected trades, by market and error kind.",
	},
	[]string{"market", "reason"},
)

// ── Income sweep metrics ──────────────────────────────────────────────────────

// SweepDuration measures how long one full periodic income sweep takes.
// Label:
//   - outcome: "ok", "partial" (some accounts failed), or "skipped"
var SweepDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "income_sweep_duration_seconds",
		Help:      "Duration of a periodic income sweep across all active accounts.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 0.1s … ~3.4min
	},
	[]string{"outcome"},
)

// SweepAccountsTotal counts accounts visited by income sweeps.
// Label:
//   - result: "processed" or "failed"
var SweepAccountsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "income_sweep_accounts_total",
		Help:      "Total number of accounts visited by income sweeps, by result.",
	},
	[]string{"result"},
)

// ObserveSweep records one sweep run. Callers pass the wall-clock duration and
// the per-account outcome counts reported by the sweep.
func ObserveSweep(elapsed time.Duration, processed, failed int, skipped bool) {
	outcome := "ok"
	switch {
	case skipped:
		outcome = "skipped"
	case failed > 0:
		outcome = "partial"
	}
	SweepDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	SweepAccountsTotal.WithLabelValues("processed").Add(float64(processed))
	SweepAccountsTotal.WithLabelValues("failed").Add(float64(failed))
}
