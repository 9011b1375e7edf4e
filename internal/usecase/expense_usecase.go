package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/engine"
)

// ExpenseUseCase handles expense business logic. Shares are evaluated here,
// at write time, and frozen on the stored record.
type ExpenseUseCase struct {
	ledgerRepo  LedgerRepository
	expenseRepo ExpenseRepository
	cache       Cache
	idGen       IDGenerator
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(ledgerRepo LedgerRepository, expenseRepo ExpenseRepository, cache Cache, idGen IDGenerator) *ExpenseUseCase {
	return &ExpenseUseCase{
		ledgerRepo:  ledgerRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		idGen:       idGen,
	}
}

// ExpenseInput represents input for creating or updating an expense.
type ExpenseInput struct {
	Description     string
	Amount          decimal.Decimal
	PayerID         string
	ParticipantIDs  []string
	SplitPolicy     domain.SplitPolicy
	RawSplits       map[string]decimal.Decimal
	IsCardPurchase  bool
	Card            *domain.CardKey
	TransactionDate time.Time
	IsInstallment   bool
	InstallmentCount int
}

// CreateExpense evaluates the split, amortizes installments, and persists a
// new expense in the ledger.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, ledgerID string, input ExpenseInput) (*domain.Expense, error) {
	ledger, err := uc.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := &domain.Expense{
		ID:        uc.idGen.Generate(),
		LedgerID:  ledgerID,
		CreatedAt: now,
	}

	if err := uc.populate(expense, ledger, input, now); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	uc.invalidatePlan(ctx, ledgerID)

	return expense, nil
}

// UpdateExpense re-evaluates shares and installment fields from the new
// input, preserving the record identity and creation time.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, ledgerID, expenseID string, input ExpenseInput) (*domain.Expense, error) {
	ledger, err := uc.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.LedgerID != ledgerID {
		return nil, domain.ErrExpenseNotFound
	}

	if err := uc.populate(expense, ledger, input, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	uc.invalidatePlan(ctx, ledgerID)

	return expense, nil
}

// DeleteExpense removes an expense from its ledger.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, ledgerID, expenseID string) error {
	expense, err := uc.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.LedgerID != ledgerID {
		return domain.ErrExpenseNotFound
	}
	if err := uc.expenseRepo.Delete(ctx, expenseID); err != nil {
		return err
	}
	uc.invalidatePlan(ctx, ledgerID)
	return nil
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// ListExpenses lists all expenses in a ledger.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, ledgerID string) ([]*domain.Expense, error) {
	if _, err := uc.ledgerRepo.GetByID(ctx, ledgerID); err != nil {
		return nil, err
	}
	return uc.expenseRepo.ListByLedger(ctx, ledgerID)
}

func (uc *ExpenseUseCase) populate(expense *domain.Expense, ledger *domain.Ledger, input ExpenseInput, now time.Time) error {
	if !ledger.HasMember(input.PayerID) {
		return fmt.Errorf("%w: payer %s is not in ledger %s", domain.ErrMemberNotFound, input.PayerID, ledger.ID)
	}
	for _, id := range input.ParticipantIDs {
		if !ledger.HasMember(id) {
			return fmt.Errorf("%w: participant %s is not in ledger %s", domain.ErrMemberNotFound, id, ledger.ID)
		}
	}

	shares, err := engine.EvaluateSplit(input.Amount, input.ParticipantIDs, input.SplitPolicy, input.RawSplits)
	if err != nil {
		return err
	}

	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.PayerID = input.PayerID
	expense.ParticipantIDs = input.ParticipantIDs
	expense.SplitPolicy = input.SplitPolicy
	expense.Shares = shares
	expense.IsCardPurchase = input.IsCardPurchase
	expense.Card = input.Card
	// Stored as a civil date; canonicalize up front so the response body
	// matches what a later read returns.
	expense.TransactionDate = domain.DateOnly(input.TransactionDate)
	expense.UpdatedAt = now

	expense.IsInstallment = input.IsInstallment
	expense.InstallmentCount = 0
	expense.InstallmentAmount = decimal.Zero
	expense.PayoffMonth = time.Time{}
	if input.IsInstallment {
		plan, err := engine.AmortizeInstallment(input.Amount, input.InstallmentCount, expense.TransactionDate)
		if err != nil {
			return err
		}
		expense.InstallmentCount = input.InstallmentCount
		expense.InstallmentAmount = plan.Amount
		expense.PayoffMonth = plan.PayoffMonth
	}

	return expense.Validate()
}

func (uc *ExpenseUseCase) invalidatePlan(ctx context.Context, ledgerID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, planCacheKey(ledgerID))
	}
}
