package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReimbursementDirection tells whether a reimbursement entry flows toward the
// user or away from them.
type ReimbursementDirection string

const (
	OwedToUser ReimbursementDirection = "owed_to_user"
	UserOwes   ReimbursementDirection = "user_owes"
)

// SourceScopeAggregate marks obligation records produced by the aggregator,
// as opposed to manually entered future expenses.
const SourceScopeAggregate = "aggregate"

// Reimbursement is one member-to-member flow contributing to an obligation:
// either another participant owing the user (the user paid) or the user
// owing the payer.
type Reimbursement struct {
	Direction         ReimbursementDirection `json:"direction"`
	CounterpartyID    string                 `json:"counterparty_id"`
	Amount            decimal.Decimal        `json:"amount"`
	SourceDescription string                 `json:"source_description"`
	SourceLedgerID    string                 `json:"source_ledger_id"`
}

// BucketKey is the composite identity of an obligation within one user's
// projection set: the statement month a charge is due plus the card it was
// made on. Records are matched by this key during reconciliation, never by
// parsing descriptions.
type BucketKey struct {
	DueMonth time.Time
	Card     CardKey
}

// ObligationRecord is a derived, per-user projection of future card debt for
// one (due month, card) bucket. It is single-writer and disposable: every
// reconciliation pass regenerates it from source expenses.
type ObligationRecord struct {
	ID             string
	UserID         string
	Description    string
	Amount         decimal.Decimal
	DueMonth       time.Time
	Card           CardKey
	SourceScope    string
	Reimbursements []Reimbursement
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// Key returns the record's reconciliation identity. The due month is
// normalized through MonthStart so a record loaded from storage produces the
// same map key as a freshly aggregated bucket.
func (o *ObligationRecord) Key() BucketKey {
	return BucketKey{DueMonth: MonthStart(o.DueMonth), Card: o.Card}
}
