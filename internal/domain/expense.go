package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SplitPolicy is the rule used to divide one expense among participants.
type SplitPolicy string

const (
	SplitEqual        SplitPolicy = "equal"
	SplitByAmount     SplitPolicy = "by_amount"
	SplitByPercentage SplitPolicy = "by_percentage"
)

// Valid reports whether p is a known split policy.
func (p SplitPolicy) Valid() bool {
	switch p {
	case SplitEqual, SplitByAmount, SplitByPercentage:
		return true
	}
	return false
}

// CardKey identifies a credit card by bank and card type. It is half of the
// composite bucket key used when aggregating obligations.
type CardKey struct {
	BankName string
	CardType string
}

// String renders the key for display, e.g. "Galicia - Visa".
func (k CardKey) String() string {
	return k.BankName + " - " + k.CardType
}

// Expense is one shared expense in a ledger. Shares are evaluated once at
// write time and frozen; they are never re-derived from the stored record.
type Expense struct {
	ID              string
	LedgerID        string
	Description     string
	Amount          decimal.Decimal
	PayerID         string
	ParticipantIDs  []string
	SplitPolicy     SplitPolicy
	Shares          map[string]decimal.Decimal
	IsCardPurchase  bool
	Card            *CardKey
	TransactionDate time.Time

	// Installment fields. When IsInstallment is set, downstream monthly
	// burden computations use InstallmentAmount; Amount stays recorded for
	// historical display.
	IsInstallment     bool
	InstallmentCount  int
	InstallmentAmount decimal.Decimal
	PayoffMonth       time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlyBurden returns the amount an expense contributes to one member's
// monthly position: the installment amount for financed purchases, the
// member's frozen share otherwise. Zero when the member does not participate.
func (e *Expense) MonthlyBurden(memberID string) decimal.Decimal {
	if e.IsInstallment {
		return e.InstallmentAmount
	}
	return e.Shares[memberID]
}

// Validate checks the structural invariants of an expense.
func (e *Expense) Validate() error {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}
	if len(e.ParticipantIDs) == 0 {
		return fmt.Errorf("%w: at least one participant required", ErrInvalidExpense)
	}
	if !e.SplitPolicy.Valid() {
		return fmt.Errorf("%w: unknown split policy %q", ErrInvalidExpense, e.SplitPolicy)
	}
	if e.PayerID == "" {
		return fmt.Errorf("%w: payer required", ErrInvalidExpense)
	}
	if len(e.Shares) != len(e.ParticipantIDs) {
		return fmt.Errorf("%w: shares must cover exactly the participants", ErrInvalidExpense)
	}
	for _, id := range e.ParticipantIDs {
		if _, ok := e.Shares[id]; !ok {
			return fmt.Errorf("%w: missing share for participant %s", ErrInvalidExpense, id)
		}
	}
	if e.IsCardPurchase && e.Card == nil {
		return fmt.Errorf("%w: card purchase requires a card key", ErrInvalidExpense)
	}
	if e.IsInstallment {
		if e.InstallmentCount < 1 {
			return fmt.Errorf("%w: installment count must be at least 1", ErrInvalidExpense)
		}
		if e.InstallmentAmount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: installment amount must be positive", ErrInvalidExpense)
		}
	}
	return nil
}
