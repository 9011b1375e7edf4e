package usecase

import (
	"context"
	"time"

	"github.com/iho/splitledger/internal/domain"
)

// LedgerRepository defines data access for ledgers and their members.
type LedgerRepository interface {
	Create(ctx context.Context, ledger *domain.Ledger) error
	GetByID(ctx context.Context, id string) (*domain.Ledger, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Ledger, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Ledger, error)
	AddMember(ctx context.Context, ledgerID string, member domain.Member) error
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
	ListByLedger(ctx context.Context, ledgerID string) ([]*domain.Expense, error)
	ListCardPurchases(ctx context.Context, ledgerID string) ([]*domain.Expense, error)
}

// SettlementRepository defines data access for settlement records.
type SettlementRepository interface {
	Create(ctx context.Context, record *domain.SettlementRecord) error
	ListByLedger(ctx context.Context, ledgerID string) ([]*domain.SettlementRecord, error)
}

// CardRepository defines data access for a user's registered cards.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Card, error)
	Delete(ctx context.Context, id string) error
}

// ObligationRepository defines data access for materialized obligation
// records. All mutations run inside a transaction so a reconciliation batch
// commits atomically.
type ObligationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.ObligationRecord, error)
	CreateTx(ctx context.Context, tx Transaction, record *domain.ObligationRecord) error
	UpdateTx(ctx context.Context, tx Transaction, record *domain.ObligationRecord) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
