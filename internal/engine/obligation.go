package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// LedgerExpenses pairs one ledger with the card expenses read from it. It is
// the snapshot unit the aggregator consumes.
type LedgerExpenses struct {
	Ledger   *domain.Ledger
	Expenses []*domain.Expense
}

// Bucket accumulates one user's card burden for a single (due month, card)
// key, along with the member-to-member reimbursement breakdown behind it.
type Bucket struct {
	Key            domain.BucketKey
	Amount         decimal.Decimal
	Reimbursements []domain.Reimbursement
}

// AggregateCardObligations scans every ledger the user belongs to and buckets
// the user's card purchase burdens by (due month, card key).
//
// The per-expense burden is the monthly installment for financed purchases
// and the user's frozen share otherwise. The due month comes from the closing
// day of the matching registered card, or the default closing day when the
// card is not registered. Reimbursement entries record who owes whom for each
// contributing expense: one owed_to_user entry per other participant when the
// user paid, a single user_owes entry toward the payer when they did not.
func AggregateCardObligations(userID string, sources []LedgerExpenses, cards []*domain.Card) map[domain.BucketKey]*Bucket {
	closingDays := make(map[domain.CardKey]int, len(cards))
	for _, c := range cards {
		closingDays[c.Key()] = c.ClosingDay
	}

	buckets := make(map[domain.BucketKey]*Bucket)

	for _, src := range sources {
		if src.Ledger == nil || !src.Ledger.HasMember(userID) {
			continue
		}

		for _, e := range src.Expenses {
			if !e.IsCardPurchase || e.Card == nil {
				continue
			}

			closingDay, ok := closingDays[*e.Card]
			if !ok {
				closingDay = domain.DefaultClosingDay
			}

			dueMonth := ResolveBillingCycle(e.TransactionDate, closingDay)
			key := domain.BucketKey{DueMonth: dueMonth, Card: *e.Card}

			bucket, ok := buckets[key]
			if !ok {
				bucket = &Bucket{Key: key, Amount: decimal.Zero}
				buckets[key] = bucket
			}

			bucket.Amount = bucket.Amount.Add(e.MonthlyBurden(userID))
			bucket.Reimbursements = append(bucket.Reimbursements, expenseReimbursements(userID, src.Ledger.ID, e)...)
		}
	}

	return buckets
}

func expenseReimbursements(userID, ledgerID string, e *domain.Expense) []domain.Reimbursement {
	var entries []domain.Reimbursement

	if e.PayerID == userID {
		for _, id := range e.ParticipantIDs {
			share := e.Shares[id]
			if id == userID || !share.GreaterThan(decimal.Zero) {
				continue
			}
			entries = append(entries, domain.Reimbursement{
				Direction:         domain.OwedToUser,
				CounterpartyID:    id,
				Amount:            share,
				SourceDescription: e.Description,
				SourceLedgerID:    ledgerID,
			})
		}
		return entries
	}

	if share := e.Shares[userID]; share.GreaterThan(decimal.Zero) {
		entries = append(entries, domain.Reimbursement{
			Direction:         domain.UserOwes,
			CounterpartyID:    e.PayerID,
			Amount:            share,
			SourceDescription: e.Description,
			SourceLedgerID:    ledgerID,
		})
	}

	return entries
}

// ReconciliationPlan is the atomic batch of operations that brings a user's
// materialized obligation records in line with freshly aggregated buckets.
// Creates carry no ID; the applier assigns one.
type ReconciliationPlan struct {
	Creates []*domain.ObligationRecord
	Updates []*domain.ObligationRecord
	Deletes []string
}

// Empty reports whether the plan is a no-op.
func (p ReconciliationPlan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

// PlanReconciliation diffs aggregated buckets against the user's existing
// obligation records, matching by the composite (due month, card) key.
//
// Existing records whose bucket vanished or recomputed to a non-positive
// total are deleted; persisting buckets update the record in place, keeping
// its ID and creation time; new positive buckets become creates. A record
// whose amount is within domain.Tolerance of the recomputed total and whose
// reimbursements are unchanged is left alone, so running the plan twice over
// unchanged source data yields an empty second plan.
//
// Duplicate records for one key (a torn earlier write) are self-healed: the
// oldest record is kept and the rest are deleted.
func PlanReconciliation(userID string, buckets map[domain.BucketKey]*Bucket, existing []*domain.ObligationRecord, now time.Time) ReconciliationPlan {
	ordered := make([]*domain.ObligationRecord, len(existing))
	copy(ordered, existing)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var plan ReconciliationPlan

	kept := make(map[domain.BucketKey]*domain.ObligationRecord, len(ordered))
	for _, rec := range ordered {
		key := rec.Key()
		if _, dup := kept[key]; dup {
			plan.Deletes = append(plan.Deletes, rec.ID)
			continue
		}

		bucket, ok := buckets[key]
		if !ok || !bucket.Amount.GreaterThan(decimal.Zero) {
			plan.Deletes = append(plan.Deletes, rec.ID)
			continue
		}
		kept[key] = rec

		// The stored amount is rounded to the column scale while the
		// recomputed total carries full division precision, so exact
		// equality would flag an update forever on repeating decimals.
		if domain.ApproxEqual(rec.Amount, bucket.Amount) && reimbursementsEqual(rec.Reimbursements, bucket.Reimbursements) {
			continue
		}

		updated := *rec
		updated.Amount = bucket.Amount
		updated.Reimbursements = bucket.Reimbursements
		updated.Description = bucketDescription(key)
		updated.LastModifiedAt = now
		plan.Updates = append(plan.Updates, &updated)
	}

	for key, bucket := range buckets {
		if _, ok := kept[key]; ok {
			continue
		}
		if !bucket.Amount.GreaterThan(decimal.Zero) {
			continue
		}
		plan.Creates = append(plan.Creates, &domain.ObligationRecord{
			UserID:         userID,
			Description:    bucketDescription(key),
			Amount:         bucket.Amount,
			DueMonth:       key.DueMonth,
			Card:           key.Card,
			SourceScope:    domain.SourceScopeAggregate,
			Reimbursements: bucket.Reimbursements,
			CreatedAt:      now,
			LastModifiedAt: now,
		})
	}

	sortRecords(plan.Creates)
	sortRecords(plan.Updates)
	sort.Strings(plan.Deletes)

	return plan
}

func bucketDescription(key domain.BucketKey) string {
	return "Shared card debt - " + key.Card.String()
}

func sortRecords(records []*domain.ObligationRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].DueMonth.Equal(records[j].DueMonth) {
			return records[i].DueMonth.Before(records[j].DueMonth)
		}
		if records[i].Card.BankName != records[j].Card.BankName {
			return records[i].Card.BankName < records[j].Card.BankName
		}
		return records[i].Card.CardType < records[j].Card.CardType
	})
}

func reimbursementsEqual(a, b []domain.Reimbursement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Direction != b[i].Direction ||
			a[i].CounterpartyID != b[i].CounterpartyID ||
			a[i].SourceDescription != b[i].SourceDescription ||
			a[i].SourceLedgerID != b[i].SourceLedgerID ||
			!a[i].Amount.Equal(b[i].Amount) {
			return false
		}
	}
	return true
}
