// Package engine holds the pure calculation core: split evaluation, balance
// folding, settlement minimization, installment amortization, billing-cycle
// resolution, and obligation reconciliation planning. Nothing here touches
// storage; everything is a synchronous fold over its inputs.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// EvaluateSplit turns one expense's amount, participants, and policy into a
// per-member share map covering exactly the participants and summing to the
// amount within domain.Tolerance.
//
// For by-amount splits raw holds explicit amounts; for by-percentage splits
// raw holds percentages that must sum to 100. Equal splits divide the amount
// identically across participants with no remainder redistribution, so the
// sum may be off by fractions of a cent.
//
// Shares are evaluated at expense write time and frozen; callers must not
// re-derive them from a stored expense.
func EvaluateSplit(amount decimal.Decimal, participantIDs []string, policy domain.SplitPolicy, raw map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidExpense)
	}
	if len(participantIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one participant required", domain.ErrInvalidExpense)
	}

	shares := make(map[string]decimal.Decimal, len(participantIDs))

	switch policy {
	case domain.SplitEqual:
		share := amount.Div(decimal.NewFromInt(int64(len(participantIDs))))
		for _, id := range participantIDs {
			shares[id] = share
		}

	case domain.SplitByAmount:
		sum := decimal.Zero
		for _, id := range participantIDs {
			v, ok := raw[id]
			if !ok {
				return nil, fmt.Errorf("%w: missing amount for participant %s", domain.ErrSplitMismatch, id)
			}
			shares[id] = v
			sum = sum.Add(v)
		}
		if !domain.ApproxEqual(sum, amount) {
			return nil, fmt.Errorf("%w: amounts sum to %s, expected %s", domain.ErrSplitMismatch, sum, amount)
		}

	case domain.SplitByPercentage:
		sum := decimal.Zero
		for _, id := range participantIDs {
			v, ok := raw[id]
			if !ok {
				return nil, fmt.Errorf("%w: missing percentage for participant %s", domain.ErrSplitMismatch, id)
			}
			shares[id] = v.Div(oneHundred).Mul(amount)
			sum = sum.Add(v)
		}
		if !domain.ApproxEqual(sum, oneHundred) {
			return nil, fmt.Errorf("%w: percentages sum to %s, expected 100", domain.ErrSplitMismatch, sum)
		}

	default:
		return nil, fmt.Errorf("%w: unknown split policy %q", domain.ErrInvalidExpense, policy)
	}

	return shares, nil
}
