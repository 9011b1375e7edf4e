package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
	"github.com/iho/splitledger/internal/usecase/mocks"
)

func newExpenseUseCase(ledgerRepo *mocks.MockLedgerRepository, expenseRepo *mocks.MockExpenseRepository, cache usecase.Cache) *usecase.ExpenseUseCase {
	return usecase.NewExpenseUseCase(ledgerRepo, expenseRepo, cache, mocks.NewMockIDGenerator())
}

func TestCreateExpenseEqualSplit(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob", "carol")))

	uc := newExpenseUseCase(ledgerRepo, expenseRepo, nil)

	expense, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Description:     "dinner",
		Amount:          decimal.RequireFromString("90"),
		PayerID:         "alice",
		ParticipantIDs:  []string{"alice", "bob", "carol"},
		SplitPolicy:     domain.SplitEqual,
		TransactionDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, expense.ID)
	require.Len(t, expense.Shares, 3)
	assert.True(t, expense.Shares["bob"].Equal(decimal.RequireFromString("30")))

	stored, err := expenseRepo.GetByID(context.Background(), expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "dinner", stored.Description)
}

func TestCreateExpensePayerNotMember(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	uc := newExpenseUseCase(ledgerRepo, mocks.NewMockExpenseRepository(), nil)

	_, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Amount:         decimal.RequireFromString("90"),
		PayerID:        "mallory",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitEqual,
	})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)

	_, err = uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Amount:         decimal.RequireFromString("90"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "mallory"},
		SplitPolicy:    domain.SplitEqual,
	})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestCreateExpenseSplitMismatch(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	uc := newExpenseUseCase(ledgerRepo, mocks.NewMockExpenseRepository(), nil)

	_, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Amount:         decimal.RequireFromString("100"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitByAmount,
		RawSplits: map[string]decimal.Decimal{
			"alice": decimal.RequireFromString("40"),
			"bob":   decimal.RequireFromString("61"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrSplitMismatch)
}

func TestCreateExpenseInstallment(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	uc := newExpenseUseCase(ledgerRepo, mocks.NewMockExpenseRepository(), nil)

	expense, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Description:      "television",
		Amount:           decimal.RequireFromString("120"),
		PayerID:          "alice",
		ParticipantIDs:   []string{"alice", "bob"},
		SplitPolicy:      domain.SplitEqual,
		IsCardPurchase:   true,
		Card:             &domain.CardKey{BankName: "Galicia", CardType: "Visa"},
		TransactionDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		IsInstallment:    true,
		InstallmentCount: 12,
	})
	require.NoError(t, err)
	assert.True(t, expense.InstallmentAmount.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), expense.PayoffMonth)
}

func TestUpdateExpensePreservesIdentity(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	uc := newExpenseUseCase(ledgerRepo, expenseRepo, nil)

	created, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Description:    "hotel",
		Amount:         decimal.RequireFromString("200"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitEqual,
	})
	require.NoError(t, err)

	updated, err := uc.UpdateExpense(context.Background(), "l1", created.ID, usecase.ExpenseInput{
		Description:    "hotel + breakfast",
		Amount:         decimal.RequireFromString("240"),
		PayerID:        "bob",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitEqual,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "bob", updated.PayerID)
	assert.True(t, updated.Shares["alice"].Equal(decimal.RequireFromString("120")))
}

func TestUpdateExpenseWrongLedger(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l2", "alice", "bob")))

	uc := newExpenseUseCase(ledgerRepo, expenseRepo, nil)

	created, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Amount:         decimal.RequireFromString("10"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitEqual,
	})
	require.NoError(t, err)

	_, err = uc.UpdateExpense(context.Background(), "l2", created.ID, usecase.ExpenseInput{
		Amount:         decimal.RequireFromString("10"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitEqual,
	})
	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)

	assert.ErrorIs(t, uc.DeleteExpense(context.Background(), "l2", created.ID), domain.ErrExpenseNotFound)
}

func TestExpenseWritesInvalidatePlanCache(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	cache := mocks.NewMockCache()
	require.NoError(t, cache.Set(context.Background(), "settlement-plan:l1", "[]", 0))

	uc := newExpenseUseCase(ledgerRepo, mocks.NewMockExpenseRepository(), cache)

	_, err := uc.CreateExpense(context.Background(), "l1", usecase.ExpenseInput{
		Amount:         decimal.RequireFromString("10"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitPolicy:    domain.SplitEqual,
	})
	require.NoError(t, err)

	cached, err := cache.Get(context.Background(), "settlement-plan:l1")
	require.NoError(t, err)
	assert.Empty(t, cached)
}
