package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// SettlementUseCase records confirmed side-payments between members. A
// settlement adjusts displayed balances only; the originating expenses are
// never touched.
type SettlementUseCase struct {
	ledgerRepo     LedgerRepository
	settlementRepo SettlementRepository
	cache          Cache
	idGen          IDGenerator
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(ledgerRepo LedgerRepository, settlementRepo SettlementRepository, cache Cache, idGen IDGenerator) *SettlementUseCase {
	return &SettlementUseCase{
		ledgerRepo:     ledgerRepo,
		settlementRepo: settlementRepo,
		cache:          cache,
		idGen:          idGen,
	}
}

// RecordSettlementInput represents input for recording a settlement.
type RecordSettlementInput struct {
	FromMemberID string
	ToMemberID   string
	Amount       decimal.Decimal
}

// RecordSettlement persists a settlement between two ledger members.
func (uc *SettlementUseCase) RecordSettlement(ctx context.Context, ledgerID string, input RecordSettlementInput) (*domain.SettlementRecord, error) {
	ledger, err := uc.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if !ledger.HasMember(input.FromMemberID) {
		return nil, fmt.Errorf("%w: member %s is not in ledger %s", domain.ErrMemberNotFound, input.FromMemberID, ledgerID)
	}
	if !ledger.HasMember(input.ToMemberID) {
		return nil, fmt.Errorf("%w: member %s is not in ledger %s", domain.ErrMemberNotFound, input.ToMemberID, ledgerID)
	}

	record := &domain.SettlementRecord{
		ID:           uc.idGen.Generate(),
		LedgerID:     ledgerID,
		FromMemberID: input.FromMemberID,
		ToMemberID:   input.ToMemberID,
		Amount:       input.Amount,
		SettledAt:    time.Now().UTC(),
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := uc.settlementRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, planCacheKey(ledgerID))
	}

	return record, nil
}

// ListSettlements lists all settlement records for a ledger.
func (uc *SettlementUseCase) ListSettlements(ctx context.Context, ledgerID string) ([]*domain.SettlementRecord, error) {
	if _, err := uc.ledgerRepo.GetByID(ctx, ledgerID); err != nil {
		return nil, err
	}
	return uc.settlementRepo.ListByLedger(ctx, ledgerID)
}
