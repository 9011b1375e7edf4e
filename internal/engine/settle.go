package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// Transfer is one settling payment in a minimized plan. Transfers are derived
// on demand and never persisted.
type Transfer struct {
	FromMemberID string          `json:"from_member_id"`
	ToMemberID   string          `json:"to_member_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// MinimizeDebts converts a balance map into a short list of pairwise
// transfers that zero every balance within domain.Tolerance. It is the
// classic greedy pairing of the most negative balance against the most
// positive one; not a provable global minimum, but at most n-1 transfers for
// n members.
//
// Members with equal balances are ordered by ascending member ID so the plan
// is deterministic for a given balance map.
func MinimizeDebts(balances map[string]decimal.Decimal) []Transfer {
	type position struct {
		id      string
		balance decimal.Decimal
	}

	positions := make([]position, 0, len(balances))
	for id, b := range balances {
		positions = append(positions, position{id: id, balance: b})
	}

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].balance.Equal(positions[j].balance) {
			return positions[i].id < positions[j].id
		}
		return positions[i].balance.LessThan(positions[j].balance)
	})

	var transfers []Transfer

	low, high := 0, len(positions)-1
	for low < high {
		debtor := &positions[low]
		creditor := &positions[high]

		// Remaining imbalance within tolerance is rounding noise.
		if debtor.balance.GreaterThanOrEqual(domain.Tolerance.Neg()) || creditor.balance.LessThanOrEqual(domain.Tolerance) {
			break
		}

		settle := decimal.Min(debtor.balance.Abs(), creditor.balance)
		transfers = append(transfers, Transfer{
			FromMemberID: debtor.id,
			ToMemberID:   creditor.id,
			Amount:       settle,
		})

		debtor.balance = debtor.balance.Add(settle)
		creditor.balance = creditor.balance.Sub(settle)

		if debtor.balance.GreaterThanOrEqual(domain.Tolerance.Neg()) {
			low++
		}
		if creditor.balance.LessThanOrEqual(domain.Tolerance) {
			high--
		}
	}

	return transfers
}
