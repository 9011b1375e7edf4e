package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	mu      sync.RWMutex
	ledgers map[string]*domain.Ledger

	CreateFunc       func(ctx context.Context, ledger *domain.Ledger) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Ledger, error)
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Ledger, error)
	ListByMemberFunc func(ctx context.Context, memberID string) ([]*domain.Ledger, error)
	AddMemberFunc    func(ctx context.Context, ledgerID string, member domain.Member) error
	DeleteFunc       func(ctx context.Context, id string) error
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{ledgers: make(map[string]*domain.Ledger)}
}

func (m *MockLedgerRepository) Create(ctx context.Context, ledger *domain.Ledger) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ledger)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgers[ledger.ID] = ledger
	return nil
}

func (m *MockLedgerRepository) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.ledgers[id]; ok {
		return l, nil
	}
	return nil, domain.ErrLedgerNotFound
}

func (m *MockLedgerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ledger, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Ledger
	for _, l := range m.ledgers {
		out = append(out, l)
	}
	return out, nil
}

func (m *MockLedgerRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Ledger, error) {
	if m.ListByMemberFunc != nil {
		return m.ListByMemberFunc(ctx, memberID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Ledger
	for _, l := range m.ledgers {
		if l.HasMember(memberID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockLedgerRepository) AddMember(ctx context.Context, ledgerID string, member domain.Member) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, ledgerID, member)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.ledgers[ledgerID]
	if !ok {
		return domain.ErrLedgerNotFound
	}
	l.Members = append(l.Members, member)
	return nil
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ledgers, id)
	return nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense

	CreateFunc            func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Expense, error)
	UpdateFunc            func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc            func(ctx context.Context, id string) error
	ListByLedgerFunc      func(ctx context.Context, ledgerID string) ([]*domain.Expense, error)
	ListCardPurchasesFunc func(ctx context.Context, ledgerID string) ([]*domain.Expense, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{expenses: make(map[string]*domain.Expense)}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.expenses[id]; ok {
		return e, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[expense.ID]; !ok {
		return domain.ErrExpenseNotFound
	}
	m.expenses[expense.ID] = expense
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m *MockExpenseRepository) ListByLedger(ctx context.Context, ledgerID string) ([]*domain.Expense, error) {
	if m.ListByLedgerFunc != nil {
		return m.ListByLedgerFunc(ctx, ledgerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Expense
	for _, e := range m.expenses {
		if e.LedgerID == ledgerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockExpenseRepository) ListCardPurchases(ctx context.Context, ledgerID string) ([]*domain.Expense, error) {
	if m.ListCardPurchasesFunc != nil {
		return m.ListCardPurchasesFunc(ctx, ledgerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Expense
	for _, e := range m.expenses {
		if e.LedgerID == ledgerID && e.IsCardPurchase {
			out = append(out, e)
		}
	}
	return out, nil
}

// MockSettlementRepository is a mock implementation of SettlementRepository.
type MockSettlementRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.SettlementRecord

	CreateFunc       func(ctx context.Context, record *domain.SettlementRecord) error
	ListByLedgerFunc func(ctx context.Context, ledgerID string) ([]*domain.SettlementRecord, error)
}

func NewMockSettlementRepository() *MockSettlementRepository {
	return &MockSettlementRepository{records: make(map[string]*domain.SettlementRecord)}
}

func (m *MockSettlementRepository) Create(ctx context.Context, record *domain.SettlementRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockSettlementRepository) ListByLedger(ctx context.Context, ledgerID string) ([]*domain.SettlementRecord, error) {
	if m.ListByLedgerFunc != nil {
		return m.ListByLedgerFunc(ctx, ledgerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.SettlementRecord
	for _, r := range m.records {
		if r.LedgerID == ledgerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// MockCardRepository is a mock implementation of CardRepository.
type MockCardRepository struct {
	mu    sync.RWMutex
	cards map[string]*domain.Card

	CreateFunc     func(ctx context.Context, card *domain.Card) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Card, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.Card, error)
	DeleteFunc     func(ctx context.Context, id string) error
}

func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{cards: make(map[string]*domain.Card)}
}

func (m *MockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[card.ID] = card
	return nil
}

func (m *MockCardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.cards[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCardNotFound
}

func (m *MockCardRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Card, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Card
	for _, c := range m.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCardRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[id]; !ok {
		return domain.ErrCardNotFound
	}
	delete(m.cards, id)
	return nil
}

// MockObligationRepository is a mock implementation of ObligationRepository.
// The transactional writes take effect immediately; tests asserting atomicity
// use the Func overrides.
type MockObligationRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.ObligationRecord

	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.ObligationRecord, error)
	CreateTxFunc   func(ctx context.Context, tx usecase.Transaction, record *domain.ObligationRecord) error
	UpdateTxFunc   func(ctx context.Context, tx usecase.Transaction, record *domain.ObligationRecord) error
	DeleteTxFunc   func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockObligationRepository() *MockObligationRepository {
	return &MockObligationRepository{records: make(map[string]*domain.ObligationRecord)}
}

func (m *MockObligationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ObligationRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.ObligationRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockObligationRepository) CreateTx(ctx context.Context, tx usecase.Transaction, record *domain.ObligationRecord) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockObligationRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, record *domain.ObligationRecord) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[record.ID]; !ok {
		return domain.ErrObligationNotFound
	}
	m.records[record.ID] = record
	return nil
}

func (m *MockObligationRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return domain.ErrObligationNotFound
	}
	delete(m.records, id)
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Begun      int
	Committed  int
	RolledBack int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.Begun++
	return &MockTransaction{manager: m}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	manager   *MockTransactionManager
	committed bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.committed = true
	if t.manager != nil {
		t.manager.Committed++
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.committed && t.manager != nil {
		t.manager.RolledBack++
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu           sync.Mutex
	counter      int
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + string(rune('a'+m.counter-1))
}

// MockCache is an in-memory mock implementation of Cache. TTLs are ignored.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu        sync.Mutex
	responses map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{responses: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.responses[key]; ok {
		return true, existing, nil
	}
	m.responses[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[key] = response
	return nil
}
