package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	LedgerOperations *prometheus.CounterVec
	WalletBalance    prometheus.Gauge
	ExpensesTracked  prometheus.Gauge
	ExpenseAmount    prometheus.Histogram

	// Snapshot metrics
	SnapshotSaves    *prometheus.CounterVec
	SnapshotFailures prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		LedgerOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_ledger_operations_total",
				Help: "Total ledger operations by type and outcome",
			},
			[]string{"operation", "outcome"},
		),
		WalletBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gowallet_wallet_balance",
			Help: "Current wallet balance",
		}),
		ExpensesTracked: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "gowallet_expenses_tracked",
			Help: "Number of expenses currently recorded",
		}),
		ExpenseAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gowallet_expense_amount",
			Help:    "Expense amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
		}),

		// Snapshot metrics
		SnapshotSaves: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_snapshot_saves_total",
				Help: "Total snapshot save attempts by status",
			},
			[]string{"status"},
		),
		SnapshotFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_snapshot_failures_total",
			Help: "Total snapshot saves that failed after retries",
		}),
	}
}
