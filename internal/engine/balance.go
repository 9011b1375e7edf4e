package engine

import (
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// ComputeBalances folds a ledger's expenses and settlement records into one
// signed net balance per member: positive means the member is owed money,
// negative means the member owes.
//
// For each expense the payer is credited the effective amount and every
// participant, payer included, is debited their effective share. Installment
// expenses contribute one monthly installment, so both the amount and the
// shares are scaled down by the installment count. Each settlement then moves
// the debtor's position toward zero: from is credited, to is debited.
//
// Balances are always recomputed fully from the supplied records; there is no
// incremental state to drift. Expenses are assumed valid (non-empty
// participant sets are enforced at the write boundary).
func ComputeBalances(members []domain.Member, expenses []*domain.Expense, settlements []*domain.SettlementRecord) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(members))
	for _, m := range members {
		balances[m.ID] = decimal.Zero
	}

	for _, e := range expenses {
		scale := decimal.NewFromInt(1)
		if e.IsInstallment && e.InstallmentCount > 1 {
			scale = decimal.NewFromInt(int64(e.InstallmentCount))
		}

		balances[e.PayerID] = balances[e.PayerID].Add(e.Amount.Div(scale))
		for id, share := range e.Shares {
			balances[id] = balances[id].Sub(share.Div(scale))
		}
	}

	for _, s := range settlements {
		balances[s.FromMemberID] = balances[s.FromMemberID].Add(s.Amount)
		balances[s.ToMemberID] = balances[s.ToMemberID].Sub(s.Amount)
	}

	return balances
}
