package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

func validExpense() *domain.Expense {
	return &domain.Expense{
		ID:             "exp-1",
		LedgerID:       "led-1",
		Description:    "groceries",
		Amount:         decimal.NewFromInt(90),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob", "carol"},
		SplitPolicy:    domain.SplitEqual,
		Shares: map[string]decimal.Decimal{
			"alice": decimal.NewFromInt(30),
			"bob":   decimal.NewFromInt(30),
			"carol": decimal.NewFromInt(30),
		},
		TransactionDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestExpense_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Expense)
		wantErr bool
	}{
		{
			name:   "valid expense",
			mutate: func(e *domain.Expense) {},
		},
		{
			name:    "zero amount",
			mutate:  func(e *domain.Expense) { e.Amount = decimal.Zero },
			wantErr: true,
		},
		{
			name: "empty participants",
			mutate: func(e *domain.Expense) {
				e.ParticipantIDs = nil
				e.Shares = nil
			},
			wantErr: true,
		},
		{
			name:    "unknown policy",
			mutate:  func(e *domain.Expense) { e.SplitPolicy = "by_vibes" },
			wantErr: true,
		},
		{
			name:    "missing payer",
			mutate:  func(e *domain.Expense) { e.PayerID = "" },
			wantErr: true,
		},
		{
			name:    "shares not covering participants",
			mutate:  func(e *domain.Expense) { delete(e.Shares, "carol") },
			wantErr: true,
		},
		{
			name: "share for non-participant",
			mutate: func(e *domain.Expense) {
				delete(e.Shares, "carol")
				e.Shares["dave"] = decimal.NewFromInt(30)
			},
			wantErr: true,
		},
		{
			name:    "card purchase without card key",
			mutate:  func(e *domain.Expense) { e.IsCardPurchase = true },
			wantErr: true,
		},
		{
			name: "installment without count",
			mutate: func(e *domain.Expense) {
				e.IsInstallment = true
				e.InstallmentAmount = decimal.NewFromInt(10)
			},
			wantErr: true,
		},
		{
			name: "valid installment card purchase",
			mutate: func(e *domain.Expense) {
				e.IsCardPurchase = true
				e.Card = &domain.CardKey{BankName: "Galicia", CardType: "Visa"}
				e.IsInstallment = true
				e.InstallmentCount = 3
				e.InstallmentAmount = decimal.NewFromInt(30)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(e)

			err := e.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, domain.ErrInvalidExpense) {
					t.Errorf("expected ErrInvalidExpense, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestExpense_MonthlyBurden(t *testing.T) {
	e := validExpense()

	if got := e.MonthlyBurden("bob"); !got.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected share 30, got %s", got)
	}
	if got := e.MonthlyBurden("dave"); !got.IsZero() {
		t.Errorf("expected zero for non-participant, got %s", got)
	}

	e.IsInstallment = true
	e.InstallmentCount = 9
	e.InstallmentAmount = decimal.NewFromInt(10)

	if got := e.MonthlyBurden("bob"); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected installment amount 10, got %s", got)
	}
}

func TestLedger_AddMember(t *testing.T) {
	l := &domain.Ledger{ID: "led-1", Name: "apartment"}

	if err := l.AddMember(domain.Member{ID: "alice", DisplayName: "Alice"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.AddMember(domain.Member{ID: "alice", DisplayName: "Alice Again"}); !errors.Is(err, domain.ErrDuplicateMember) {
		t.Errorf("expected ErrDuplicateMember, got %v", err)
	}
	if !l.HasMember("alice") {
		t.Error("expected alice to be a member")
	}
	if l.HasMember("bob") {
		t.Error("did not expect bob to be a member")
	}
}

func TestSettlementRecord_Validate(t *testing.T) {
	s := &domain.SettlementRecord{
		FromMemberID: "bob",
		ToMemberID:   "alice",
		Amount:       decimal.NewFromInt(20),
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.ToMemberID = "bob"
	if err := s.Validate(); err == nil {
		t.Error("expected error for self-settlement")
	}
}
