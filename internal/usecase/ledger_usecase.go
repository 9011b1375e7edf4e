package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/engine"
)

// LedgerUseCase handles ledger lifecycle and the derived balance views.
type LedgerUseCase struct {
	ledgerRepo     LedgerRepository
	expenseRepo    ExpenseRepository
	settlementRepo SettlementRepository
	cache          Cache
	idGen          IDGenerator
}

// NewLedgerUseCase creates a new LedgerUseCase. cache may be nil; balance
// plans are then recomputed on every call.
func NewLedgerUseCase(
	ledgerRepo LedgerRepository,
	expenseRepo ExpenseRepository,
	settlementRepo SettlementRepository,
	cache Cache,
	idGen IDGenerator,
) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo:     ledgerRepo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
		cache:          cache,
		idGen:          idGen,
	}
}

// MemberInput identifies one member when creating a ledger or joining one.
type MemberInput struct {
	ID          string
	DisplayName string
}

// CreateLedgerInput represents input for creating a ledger.
type CreateLedgerInput struct {
	Name    string
	Members []MemberInput
}

// CreateLedger creates a new ledger with its initial member list.
func (uc *LedgerUseCase) CreateLedger(ctx context.Context, input CreateLedgerInput) (*domain.Ledger, error) {
	if err := domain.ValidateLedgerName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ledger := &domain.Ledger{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, m := range input.Members {
		if err := domain.ValidateDisplayName(m.DisplayName); err != nil {
			return nil, err
		}
		id := m.ID
		if id == "" {
			id = uc.idGen.Generate()
		}
		if err := ledger.AddMember(domain.Member{ID: id, DisplayName: m.DisplayName, JoinedAt: now}); err != nil {
			return nil, err
		}
	}

	if err := uc.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

// GetLedger retrieves a ledger with its members.
func (uc *LedgerUseCase) GetLedger(ctx context.Context, id string) (*domain.Ledger, error) {
	return uc.ledgerRepo.GetByID(ctx, id)
}

// ListLedgersInput represents input for listing ledgers.
type ListLedgersInput struct {
	Limit  int
	Offset int
}

// ListLedgers lists ledgers with pagination.
func (uc *LedgerUseCase) ListLedgers(ctx context.Context, input ListLedgersInput) ([]*domain.Ledger, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}
	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}
	return uc.ledgerRepo.List(ctx, input.Limit, input.Offset)
}

// AddMember adds a member to an existing ledger.
func (uc *LedgerUseCase) AddMember(ctx context.Context, ledgerID string, input MemberInput) (*domain.Ledger, error) {
	if err := domain.ValidateDisplayName(input.DisplayName); err != nil {
		return nil, err
	}

	ledger, err := uc.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = uc.idGen.Generate()
	}

	member := domain.Member{ID: id, DisplayName: input.DisplayName, JoinedAt: time.Now().UTC()}
	if err := ledger.AddMember(member); err != nil {
		return nil, err
	}
	if err := uc.ledgerRepo.AddMember(ctx, ledgerID, member); err != nil {
		return nil, err
	}

	return ledger, nil
}

// DeleteLedger removes a ledger along with its expenses and settlements.
// Obligation records are deliberately untouched: they are a disposable
// projection and the next reconciliation drops any bucket whose source
// expenses vanished.
func (uc *LedgerUseCase) DeleteLedger(ctx context.Context, id string) error {
	if _, err := uc.ledgerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.ledgerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidatePlan(ctx, id)
	return nil
}

// MemberBalance is one member's net position in a ledger.
type MemberBalance struct {
	MemberID    string
	DisplayName string
	Balance     decimal.Decimal
}

// GetBalances recomputes every member's net position from the ledger's
// expenses and settlement records. Positive means owed money, negative means
// owes.
func (uc *LedgerUseCase) GetBalances(ctx context.Context, ledgerID string) ([]MemberBalance, error) {
	ledger, expenses, settlements, err := uc.loadLedgerData(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	balances := engine.ComputeBalances(ledger.Members, expenses, settlements)

	result := make([]MemberBalance, 0, len(ledger.Members))
	for _, m := range ledger.Members {
		result = append(result, MemberBalance{
			MemberID:    m.ID,
			DisplayName: m.DisplayName,
			Balance:     balances[m.ID],
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MemberID < result[j].MemberID })

	return result, nil
}

// GetSettlementPlan returns the minimized transfer list that settles the
// ledger. Plans are cached briefly; any expense or settlement write
// invalidates the cached plan.
func (uc *LedgerUseCase) GetSettlementPlan(ctx context.Context, ledgerID string) ([]engine.Transfer, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, planCacheKey(ledgerID)); err == nil && cached != "" {
			var transfers []engine.Transfer
			if json.Unmarshal([]byte(cached), &transfers) == nil {
				return transfers, nil
			}
		}
	}

	ledger, expenses, settlements, err := uc.loadLedgerData(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	balances := engine.ComputeBalances(ledger.Members, expenses, settlements)
	transfers := engine.MinimizeDebts(balances)

	if uc.cache != nil {
		if encoded, err := json.Marshal(transfers); err == nil {
			_ = uc.cache.Set(ctx, planCacheKey(ledgerID), string(encoded), SettlementPlanTTL)
		}
	}

	return transfers, nil
}

func (uc *LedgerUseCase) loadLedgerData(ctx context.Context, ledgerID string) (*domain.Ledger, []*domain.Expense, []*domain.SettlementRecord, error) {
	ledger, err := uc.ledgerRepo.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := uc.expenseRepo.ListByLedger(ctx, ledgerID)
	if err != nil {
		return nil, nil, nil, err
	}
	settlements, err := uc.settlementRepo.ListByLedger(ctx, ledgerID)
	if err != nil {
		return nil, nil, nil, err
	}
	return ledger, expenses, settlements, nil
}

func (uc *LedgerUseCase) invalidatePlan(ctx context.Context, ledgerID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, planCacheKey(ledgerID))
	}
}

func planCacheKey(ledgerID string) string {
	return "settlement-plan:" + ledgerID
}
