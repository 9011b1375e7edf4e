package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Expense metrics
	ExpensesCreated prometheus.Counter
	ExpensesUpdated prometheus.Counter
	ExpensesDeleted prometheus.Counter
	ExpenseAmount   prometheus.Histogram

	// Settlement metrics
	SettlementsRecorded prometheus.Counter
	SettlementPlanSize  prometheus.Histogram

	// Reconciliation metrics
	ReconciliationRuns     prometheus.Counter
	ReconciliationAborts   prometheus.Counter
	ReconciliationDuration prometheus.Histogram
	ObligationChanges      *prometheus.CounterVec

	// Ledger metrics
	LedgersCreated prometheus.Counter
	MembersAdded   prometheus.Counter

	// Card metrics
	CardsRegistered prometheus.Counter

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Expense metrics
		ExpensesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_expenses_created_total",
			Help: "Total number of expenses created",
		}),
		ExpensesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_expenses_updated_total",
			Help: "Total number of expenses updated",
		}),
		ExpensesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_expenses_deleted_total",
			Help: "Total number of expenses deleted",
		}),
		ExpenseAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitledger_expense_amount",
			Help:    "Expense amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),

		// Settlement metrics
		SettlementsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_settlements_recorded_total",
			Help: "Total number of settlements recorded",
		}),
		SettlementPlanSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitledger_settlement_plan_transfers",
			Help:    "Number of transfers in computed settlement plans",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),

		// Reconciliation metrics
		ReconciliationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_reconciliation_runs_total",
			Help: "Total number of completed reconciliation passes",
		}),
		ReconciliationAborts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_reconciliation_aborts_total",
			Help: "Total number of reconciliation passes aborted before writing",
		}),
		ReconciliationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitledger_reconciliation_duration_seconds",
			Help:    "Duration of reconciliation passes",
			Buckets: prometheus.DefBuckets,
		}),
		ObligationChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_obligation_changes_total",
				Help: "Obligation records written during reconciliation by operation",
			},
			[]string{"operation"},
		),

		// Ledger metrics
		LedgersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_ledgers_created_total",
			Help: "Total number of ledgers created",
		}),
		MembersAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_members_added_total",
			Help: "Total number of members added to ledgers",
		}),

		// Card metrics
		CardsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_cards_registered_total",
			Help: "Total number of cards registered",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "splitledger_db_query_duration_seconds",
				Help:    "Duration of database queries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "splitledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_db_errors_total",
				Help: "Total number of database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_redis_operations_total",
				Help: "Total number of Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_redis_errors_total",
				Help: "Total number of Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_rate_limit_hits_total",
				Help: "Total number of rate limit hits",
			},
			[]string{"endpoint"},
		),
	}
}
