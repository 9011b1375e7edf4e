package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRecord is a manually confirmed side-payment between two members.
// It adjusts displayed balances but never mutates the originating expenses.
type SettlementRecord struct {
	ID           string
	LedgerID     string
	FromMemberID string
	ToMemberID   string
	Amount       decimal.Decimal
	SettledAt    time.Time
}

// Validate checks the structural invariants of a settlement record.
func (s *SettlementRecord) Validate() error {
	if s.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: settlement amount must be positive", ErrInvalidSettlement)
	}
	if s.FromMemberID == "" || s.ToMemberID == "" {
		return fmt.Errorf("%w: settlement requires both members", ErrInvalidSettlement)
	}
	if s.FromMemberID == s.ToMemberID {
		return fmt.Errorf("%w: cannot settle with yourself", ErrInvalidSettlement)
	}
	return nil
}
