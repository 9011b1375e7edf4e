package usecase

import "time"

const (
	// DefaultPageSize is applied when a listing request does not set a limit.
	DefaultPageSize = 20

	// MaxPageSize caps listing requests.
	MaxPageSize = 100

	// SettlementPlanTTL is how long a computed settlement plan stays cached
	// before being recomputed from source expenses.
	SettlementPlanTTL = 30 * time.Second
)
