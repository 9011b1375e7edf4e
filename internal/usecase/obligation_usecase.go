package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/engine"
	"github.com/iho/splitledger/internal/infrastructure/metrics"
)

// ObligationUseCase projects card expenses scattered across a user's ledgers
// into materialized per-(due month, card) obligation records.
type ObligationUseCase struct {
	txManager      TransactionManager
	ledgerRepo     LedgerRepository
	expenseRepo    ExpenseRepository
	cardRepo       CardRepository
	obligationRepo ObligationRepository
	idGen          IDGenerator
	retrier        Retrier
	metrics        *metrics.Metrics
}

// NewObligationUseCase creates a new ObligationUseCase.
func NewObligationUseCase(
	txManager TransactionManager,
	ledgerRepo LedgerRepository,
	expenseRepo ExpenseRepository,
	cardRepo CardRepository,
	obligationRepo ObligationRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *ObligationUseCase {
	return &ObligationUseCase{
		txManager:      txManager,
		ledgerRepo:     ledgerRepo,
		expenseRepo:    expenseRepo,
		cardRepo:       cardRepo,
		obligationRepo: obligationRepo,
		idGen:          idGen,
		retrier:        retrier,
		metrics:        metrics,
	}
}

// ReconcileResult summarizes one reconciliation pass.
type ReconcileResult struct {
	Created int
	Updated int
	Deleted int
}

// Reconcile re-derives the user's full obligation projection from a snapshot
// of source data and applies the resulting create/update/delete batch in one
// transaction. Unchanged source data yields a no-op: no record is rewritten
// and no creation time changes.
//
// Any source read failure aborts the pass with ErrReconciliationAborted
// before anything is written; the caller simply retries on the next trigger.
func (uc *ObligationUseCase) Reconcile(ctx context.Context, userID string) (*ReconcileResult, error) {
	start := time.Now()

	ledgers, err := uc.ledgerRepo.ListByMember(ctx, userID)
	if err != nil {
		uc.countAbort()
		return nil, fmt.Errorf("%w: listing ledgers: %v", domain.ErrReconciliationAborted, err)
	}

	sources := make([]engine.LedgerExpenses, 0, len(ledgers))
	for _, l := range ledgers {
		expenses, err := uc.expenseRepo.ListCardPurchases(ctx, l.ID)
		if err != nil {
			uc.countAbort()
			return nil, fmt.Errorf("%w: reading expenses of ledger %s: %v", domain.ErrReconciliationAborted, l.ID, err)
		}
		sources = append(sources, engine.LedgerExpenses{Ledger: l, Expenses: expenses})
	}

	cards, err := uc.cardRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.countAbort()
		return nil, fmt.Errorf("%w: reading card registry: %v", domain.ErrReconciliationAborted, err)
	}

	existing, err := uc.obligationRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.countAbort()
		return nil, fmt.Errorf("%w: reading obligation records: %v", domain.ErrReconciliationAborted, err)
	}

	buckets := engine.AggregateCardObligations(userID, sources, cards)
	plan := engine.PlanReconciliation(userID, buckets, existing, time.Now().UTC())

	result := &ReconcileResult{
		Created: len(plan.Creates),
		Updated: len(plan.Updates),
		Deleted: len(plan.Deletes),
	}
	if plan.Empty() {
		uc.countRun(result, start)
		return result, nil
	}

	apply := func() error { return uc.applyPlan(ctx, plan) }
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, apply)
	} else {
		err = apply()
	}
	if err != nil {
		return nil, err
	}

	uc.countRun(result, start)

	return result, nil
}

func (uc *ObligationUseCase) applyPlan(ctx context.Context, plan engine.ReconciliationPlan) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, id := range plan.Deletes {
		if err := uc.obligationRepo.DeleteTx(ctx, tx, id); err != nil {
			return err
		}
	}
	for _, rec := range plan.Updates {
		if err := uc.obligationRepo.UpdateTx(ctx, tx, rec); err != nil {
			return err
		}
	}
	for _, rec := range plan.Creates {
		if rec.ID == "" {
			rec.ID = uc.idGen.Generate()
		}
		if err := uc.obligationRepo.CreateTx(ctx, tx, rec); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (uc *ObligationUseCase) countAbort() {
	if uc.metrics != nil {
		uc.metrics.ReconciliationAborts.Inc()
	}
}

func (uc *ObligationUseCase) countRun(result *ReconcileResult, start time.Time) {
	if uc.metrics != nil {
		uc.metrics.ReconciliationRuns.Inc()
		uc.metrics.ReconciliationDuration.Observe(time.Since(start).Seconds())
		uc.metrics.ObligationChanges.WithLabelValues("create").Add(float64(result.Created))
		uc.metrics.ObligationChanges.WithLabelValues("update").Add(float64(result.Updated))
		uc.metrics.ObligationChanges.WithLabelValues("delete").Add(float64(result.Deleted))
	}
}

// ListObligations returns the user's materialized obligations, soonest due
// month first.
func (uc *ObligationUseCase) ListObligations(ctx context.Context, userID string) ([]*domain.ObligationRecord, error) {
	records, err := uc.obligationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].DueMonth.Equal(records[j].DueMonth) {
			return records[i].DueMonth.Before(records[j].DueMonth)
		}
		return records[i].Card.String() < records[j].Card.String()
	})

	return records, nil
}
