package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// InstallmentPlan is the amortization of a financed purchase: the equal
// monthly charge and the month in which the last installment falls due.
type InstallmentPlan struct {
	Amount      decimal.Decimal
	PayoffMonth time.Time
}

// AmortizeInstallment splits a financed purchase into equal monthly
// installments. The per-month amount is amount/count with no remainder
// redistribution, so the implied last installment may be off by fractions of
// a cent. The payoff month is the purchase month plus the installment count,
// normalized to the first of the month.
func AmortizeInstallment(amount decimal.Decimal, count int, purchaseDate time.Time) (InstallmentPlan, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return InstallmentPlan{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidExpense)
	}
	if count < 1 {
		return InstallmentPlan{}, fmt.Errorf("%w: installment count must be at least 1", domain.ErrInvalidExpense)
	}

	payoff := time.Date(purchaseDate.Year(), purchaseDate.Month()+time.Month(count), 1, 0, 0, 0, 0, time.UTC)

	return InstallmentPlan{
		Amount:      amount.Div(decimal.NewFromInt(int64(count))),
		PayoffMonth: payoff,
	}, nil
}
