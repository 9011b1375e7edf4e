package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// MemberItem identifies one member in a ledger request.
type MemberItem struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
}

// CreateLedgerRequest represents a request to create a ledger.
type CreateLedgerRequest struct {
	Name    string       `json:"name"`
	Members []MemberItem `json:"members"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLedgerRequest) ToUseCaseInput() usecase.CreateLedgerInput {
	members := make([]usecase.MemberInput, len(r.Members))
	for i, m := range r.Members {
		members[i] = usecase.MemberInput{ID: m.ID, DisplayName: m.DisplayName}
	}
	return usecase.CreateLedgerInput{
		Name:    r.Name,
		Members: members,
	}
}

// AddMemberRequest represents a request to add a member to a ledger.
type AddMemberRequest struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
}

// ToUseCaseInput converts to use case input.
func (r *AddMemberRequest) ToUseCaseInput() usecase.MemberInput {
	return usecase.MemberInput{ID: r.ID, DisplayName: r.DisplayName}
}

// CardKeyItem identifies a card by bank and type.
type CardKeyItem struct {
	BankName string `json:"bank_name"`
	CardType string `json:"card_type"`
}

// ExpenseRequest represents a request to create or update an expense.
type ExpenseRequest struct {
	Description      string                     `json:"description"`
	Amount           decimal.Decimal            `json:"amount"`
	PayerID          string                     `json:"payer_id"`
	ParticipantIDs   []string                   `json:"participant_ids"`
	SplitPolicy      string                     `json:"split_policy"`
	Splits           map[string]decimal.Decimal `json:"splits,omitempty"`
	IsCardPurchase   bool                       `json:"is_card_purchase"`
	Card             *CardKeyItem               `json:"card,omitempty"`
	TransactionDate  time.Time                  `json:"transaction_date"`
	IsInstallment    bool                       `json:"is_installment"`
	InstallmentCount int                        `json:"installment_count,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ExpenseRequest) ToUseCaseInput() usecase.ExpenseInput {
	var card *domain.CardKey
	if r.Card != nil {
		card = &domain.CardKey{BankName: r.Card.BankName, CardType: r.Card.CardType}
	}
	return usecase.ExpenseInput{
		Description:      r.Description,
		Amount:           r.Amount,
		PayerID:          r.PayerID,
		ParticipantIDs:   r.ParticipantIDs,
		SplitPolicy:      domain.SplitPolicy(r.SplitPolicy),
		RawSplits:        r.Splits,
		IsCardPurchase:   r.IsCardPurchase,
		Card:             card,
		TransactionDate:  r.TransactionDate,
		IsInstallment:    r.IsInstallment,
		InstallmentCount: r.InstallmentCount,
	}
}

// RecordSettlementRequest represents a request to record a settlement.
type RecordSettlementRequest struct {
	FromMemberID string          `json:"from_member_id"`
	ToMemberID   string          `json:"to_member_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSettlementRequest) ToUseCaseInput() usecase.RecordSettlementInput {
	return usecase.RecordSettlementInput{
		FromMemberID: r.FromMemberID,
		ToMemberID:   r.ToMemberID,
		Amount:       r.Amount,
	}
}

// RegisterCardRequest represents a request to register a card.
type RegisterCardRequest struct {
	BankName   string `json:"bank_name"`
	CardType   string `json:"card_type"`
	ClosingDay int    `json:"closing_day,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterCardRequest) ToUseCaseInput() usecase.RegisterCardInput {
	return usecase.RegisterCardInput{
		BankName:   r.BankName,
		CardType:   r.CardType,
		ClosingDay: r.ClosingDay,
	}
}
