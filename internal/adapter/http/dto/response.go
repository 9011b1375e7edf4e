package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/engine"
	"github.com/iho/splitledger/internal/usecase"
)

// MemberResponse represents a ledger member in API responses.
type MemberResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}

// LedgerResponse represents a ledger in API responses.
type LedgerResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Members   []MemberResponse `json:"members"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// LedgerFromDomain converts a domain ledger to a response.
func LedgerFromDomain(l *domain.Ledger) *LedgerResponse {
	members := make([]MemberResponse, len(l.Members))
	for i, m := range l.Members {
		members[i] = MemberResponse{ID: m.ID, DisplayName: m.DisplayName, JoinedAt: m.JoinedAt}
	}
	return &LedgerResponse{
		ID:        l.ID,
		Name:      l.Name,
		Members:   members,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// LedgersFromDomain converts domain ledgers to responses.
func LedgersFromDomain(ledgers []*domain.Ledger) []*LedgerResponse {
	result := make([]*LedgerResponse, len(ledgers))
	for i, l := range ledgers {
		result[i] = LedgerFromDomain(l)
	}
	return result
}

// ListLedgersResponse wraps a page of ledgers.
type ListLedgersResponse struct {
	Ledgers []*LedgerResponse `json:"ledgers"`
	Total   int64             `json:"total"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID                string                     `json:"id"`
	LedgerID          string                     `json:"ledger_id"`
	Description       string                     `json:"description"`
	Amount            decimal.Decimal            `json:"amount"`
	PayerID           string                     `json:"payer_id"`
	ParticipantIDs    []string                   `json:"participant_ids"`
	SplitPolicy       string                     `json:"split_policy"`
	Shares            map[string]decimal.Decimal `json:"shares"`
	IsCardPurchase    bool                       `json:"is_card_purchase"`
	Card              *CardKeyItem               `json:"card,omitempty"`
	TransactionDate   time.Time                  `json:"transaction_date"`
	IsInstallment     bool                       `json:"is_installment"`
	InstallmentCount  int                        `json:"installment_count,omitempty"`
	InstallmentAmount decimal.Decimal            `json:"installment_amount,omitempty"`
	PayoffMonth       *time.Time                 `json:"payoff_month,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:              e.ID,
		LedgerID:        e.LedgerID,
		Description:     e.Description,
		Amount:          e.Amount,
		PayerID:         e.PayerID,
		ParticipantIDs:  e.ParticipantIDs,
		SplitPolicy:     string(e.SplitPolicy),
		Shares:          e.Shares,
		IsCardPurchase:  e.IsCardPurchase,
		TransactionDate: e.TransactionDate,
		IsInstallment:   e.IsInstallment,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Card != nil {
		resp.Card = &CardKeyItem{BankName: e.Card.BankName, CardType: e.Card.CardType}
	}
	if e.IsInstallment {
		resp.InstallmentCount = e.InstallmentCount
		resp.InstallmentAmount = e.InstallmentAmount
		payoff := e.PayoffMonth
		resp.PayoffMonth = &payoff
	}
	return resp
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// ListExpensesResponse wraps a ledger's expenses.
type ListExpensesResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
	Total    int64              `json:"total"`
}

// BalanceResponse represents one member's net position.
type BalanceResponse struct {
	MemberID    string          `json:"member_id"`
	DisplayName string          `json:"display_name"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalancesFromUseCase converts use case balances to responses.
func BalancesFromUseCase(balances []usecase.MemberBalance) []BalanceResponse {
	result := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		result[i] = BalanceResponse{MemberID: b.MemberID, DisplayName: b.DisplayName, Balance: b.Balance}
	}
	return result
}

// TransferResponse represents one suggested transfer in a settlement plan.
type TransferResponse struct {
	FromMemberID string          `json:"from_member_id"`
	ToMemberID   string          `json:"to_member_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransfersFromEngine converts engine transfers to responses.
func TransfersFromEngine(transfers []engine.Transfer) []TransferResponse {
	result := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferResponse{FromMemberID: t.FromMemberID, ToMemberID: t.ToMemberID, Amount: t.Amount}
	}
	return result
}

// SettlementResponse represents a recorded settlement in API responses.
type SettlementResponse struct {
	ID           string          `json:"id"`
	LedgerID     string          `json:"ledger_id"`
	FromMemberID string          `json:"from_member_id"`
	ToMemberID   string          `json:"to_member_id"`
	Amount       decimal.Decimal `json:"amount"`
	SettledAt    time.Time       `json:"settled_at"`
}

// SettlementFromDomain converts a domain settlement record to a response.
func SettlementFromDomain(s *domain.SettlementRecord) *SettlementResponse {
	return &SettlementResponse{
		ID:           s.ID,
		LedgerID:     s.LedgerID,
		FromMemberID: s.FromMemberID,
		ToMemberID:   s.ToMemberID,
		Amount:       s.Amount,
		SettledAt:    s.SettledAt,
	}
}

// SettlementsFromDomain converts domain settlement records to responses.
func SettlementsFromDomain(records []*domain.SettlementRecord) []*SettlementResponse {
	result := make([]*SettlementResponse, len(records))
	for i, s := range records {
		result[i] = SettlementFromDomain(s)
	}
	return result
}

// CardResponse represents a registered card in API responses.
type CardResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	BankName   string    `json:"bank_name"`
	CardType   string    `json:"card_type"`
	ClosingDay int       `json:"closing_day"`
	CreatedAt  time.Time `json:"created_at"`
}

// CardFromDomain converts a domain card to a response.
func CardFromDomain(c *domain.Card) *CardResponse {
	return &CardResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		BankName:   c.BankName,
		CardType:   c.CardType,
		ClosingDay: c.ClosingDay,
		CreatedAt:  c.CreatedAt,
	}
}

// CardsFromDomain converts domain cards to responses.
func CardsFromDomain(cards []*domain.Card) []*CardResponse {
	result := make([]*CardResponse, len(cards))
	for i, c := range cards {
		result[i] = CardFromDomain(c)
	}
	return result
}

// ReimbursementResponse represents one member-to-member flow behind an
// obligation.
type ReimbursementResponse struct {
	Direction         string          `json:"direction"`
	CounterpartyID    string          `json:"counterparty_id"`
	Amount            decimal.Decimal `json:"amount"`
	SourceDescription string          `json:"source_description"`
	SourceLedgerID    string          `json:"source_ledger_id"`
}

// ObligationResponse represents a materialized obligation in API responses.
type ObligationResponse struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"user_id"`
	Description    string                  `json:"description"`
	Amount         decimal.Decimal         `json:"amount"`
	DueMonth       time.Time               `json:"due_month"`
	Card           CardKeyItem             `json:"card"`
	SourceScope    string                  `json:"source_scope"`
	Reimbursements []ReimbursementResponse `json:"reimbursements"`
	CreatedAt      time.Time               `json:"created_at"`
	LastModifiedAt time.Time               `json:"last_modified_at"`
}

// ObligationFromDomain converts a domain obligation record to a response.
func ObligationFromDomain(o *domain.ObligationRecord) *ObligationResponse {
	reimbursements := make([]ReimbursementResponse, len(o.Reimbursements))
	for i, r := range o.Reimbursements {
		reimbursements[i] = ReimbursementResponse{
			Direction:         string(r.Direction),
			CounterpartyID:    r.CounterpartyID,
			Amount:            r.Amount,
			SourceDescription: r.SourceDescription,
			SourceLedgerID:    r.SourceLedgerID,
		}
	}
	return &ObligationResponse{
		ID:             o.ID,
		UserID:         o.UserID,
		Description:    o.Description,
		Amount:         o.Amount,
		DueMonth:       o.DueMonth,
		Card:           CardKeyItem{BankName: o.Card.BankName, CardType: o.Card.CardType},
		SourceScope:    o.SourceScope,
		Reimbursements: reimbursements,
		CreatedAt:      o.CreatedAt,
		LastModifiedAt: o.LastModifiedAt,
	}
}

// ObligationsFromDomain converts domain obligation records to responses.
func ObligationsFromDomain(records []*domain.ObligationRecord) []*ObligationResponse {
	result := make([]*ObligationResponse, len(records))
	for i, o := range records {
		result[i] = ObligationFromDomain(o)
	}
	return result
}

// ReconcileResponse summarizes one reconciliation pass.
type ReconcileResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
