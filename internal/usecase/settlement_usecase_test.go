package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
	"github.com/iho/splitledger/internal/usecase/mocks"
)

func TestRecordSettlement(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	settlementRepo := mocks.NewMockSettlementRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	cache := mocks.NewMockCache()
	require.NoError(t, cache.Set(context.Background(), "settlement-plan:l1", "[]", 0))

	uc := usecase.NewSettlementUseCase(ledgerRepo, settlementRepo, cache, mocks.NewMockIDGenerator())

	record, err := uc.RecordSettlement(context.Background(), "l1", usecase.RecordSettlementInput{
		FromMemberID: "bob",
		ToMemberID:   "alice",
		Amount:       decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	assert.False(t, record.SettledAt.IsZero())

	listed, err := uc.ListSettlements(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	cached, err := cache.Get(context.Background(), "settlement-plan:l1")
	require.NoError(t, err)
	assert.Empty(t, cached, "recording a settlement invalidates the cached plan")
}

func TestRecordSettlementValidation(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	require.NoError(t, ledgerRepo.Create(context.Background(), newTestLedger("l1", "alice", "bob")))

	uc := usecase.NewSettlementUseCase(ledgerRepo, mocks.NewMockSettlementRepository(), nil, mocks.NewMockIDGenerator())

	tests := []struct {
		name    string
		input   usecase.RecordSettlementInput
		wantErr error
	}{
		{
			name:    "payer not a member",
			input:   usecase.RecordSettlementInput{FromMemberID: "mallory", ToMemberID: "alice", Amount: decimal.NewFromInt(10)},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name:    "recipient not a member",
			input:   usecase.RecordSettlementInput{FromMemberID: "alice", ToMemberID: "mallory", Amount: decimal.NewFromInt(10)},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name:    "self settlement",
			input:   usecase.RecordSettlementInput{FromMemberID: "alice", ToMemberID: "alice", Amount: decimal.NewFromInt(10)},
			wantErr: domain.ErrInvalidSettlement,
		},
		{
			name:    "non-positive amount",
			input:   usecase.RecordSettlementInput{FromMemberID: "bob", ToMemberID: "alice", Amount: decimal.Zero},
			wantErr: domain.ErrInvalidSettlement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RecordSettlement(context.Background(), "l1", tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListSettlementsUnknownLedger(t *testing.T) {
	uc := usecase.NewSettlementUseCase(mocks.NewMockLedgerRepository(), mocks.NewMockSettlementRepository(), nil, mocks.NewMockIDGenerator())

	_, err := uc.ListSettlements(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrLedgerNotFound)
}
