package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/engine"
)

func members(ids ...string) []domain.Member {
	out := make([]domain.Member, len(ids))
	for i, id := range ids {
		out[i] = domain.Member{ID: id, DisplayName: id}
	}
	return out
}

func TestComputeBalances(t *testing.T) {
	ms := members("alice", "bob", "carol")

	expenses := []*domain.Expense{
		{
			PayerID:        "alice",
			Amount:         dec("90"),
			ParticipantIDs: []string{"alice", "bob", "carol"},
			Shares: map[string]decimal.Decimal{
				"alice": dec("30"), "bob": dec("30"), "carol": dec("30"),
			},
		},
		{
			// bob pays for a two-way expense he does not take part in
			PayerID:        "bob",
			Amount:         dec("40"),
			ParticipantIDs: []string{"alice", "carol"},
			Shares: map[string]decimal.Decimal{
				"alice": dec("20"), "carol": dec("20"),
			},
		},
	}

	balances := engine.ComputeBalances(ms, expenses, nil)

	want := map[string]string{"alice": "40", "bob": "10", "carol": "-50"}
	for id, w := range want {
		if !balances[id].Equal(dec(w)) {
			t.Errorf("balance[%s]: expected %s, got %s", id, w, balances[id])
		}
	}

	assertZeroSum(t, balances)
}

func TestComputeBalances_Settlements(t *testing.T) {
	ms := members("alice", "bob")

	expenses := []*domain.Expense{
		{
			PayerID:        "alice",
			Amount:         dec("100"),
			ParticipantIDs: []string{"alice", "bob"},
			Shares:         map[string]decimal.Decimal{"alice": dec("50"), "bob": dec("50")},
		},
	}
	settlements := []*domain.SettlementRecord{
		{FromMemberID: "bob", ToMemberID: "alice", Amount: dec("50")},
	}

	balances := engine.ComputeBalances(ms, expenses, settlements)

	if !balances["alice"].IsZero() || !balances["bob"].IsZero() {
		t.Errorf("expected settled balances, got alice=%s bob=%s", balances["alice"], balances["bob"])
	}
}

func TestComputeBalances_InstallmentUsesMonthlyAmount(t *testing.T) {
	ms := members("alice", "bob")

	expenses := []*domain.Expense{
		{
			PayerID:          "alice",
			Amount:           dec("120"),
			ParticipantIDs:   []string{"alice", "bob"},
			Shares:           map[string]decimal.Decimal{"alice": dec("60"), "bob": dec("60")},
			IsInstallment:    true,
			InstallmentCount: 12,
			InstallmentAmount: dec("10"),
		},
	}

	balances := engine.ComputeBalances(ms, expenses, nil)

	// one month's worth: alice +10 -5, bob -5
	if !balances["alice"].Equal(dec("5")) {
		t.Errorf("expected alice +5, got %s", balances["alice"])
	}
	if !balances["bob"].Equal(dec("-5")) {
		t.Errorf("expected bob -5, got %s", balances["bob"])
	}
}

func TestComputeBalances_ZeroSumProperty(t *testing.T) {
	ms := members("a", "b", "c", "d")

	expenses := []*domain.Expense{
		{
			PayerID:        "a",
			Amount:         dec("100"),
			ParticipantIDs: []string{"a", "b", "c"},
			Shares: map[string]decimal.Decimal{
				"a": dec("33.3333333333333333"),
				"b": dec("33.3333333333333333"),
				"c": dec("33.3333333333333333"),
			},
		},
		{
			PayerID:        "d",
			Amount:         dec("77.35"),
			ParticipantIDs: []string{"b", "d"},
			Shares:         map[string]decimal.Decimal{"b": dec("40"), "d": dec("37.35")},
		},
		{
			PayerID:        "c",
			Amount:         dec("12.01"),
			ParticipantIDs: []string{"a"},
			Shares:         map[string]decimal.Decimal{"a": dec("12.01")},
		},
	}
	settlements := []*domain.SettlementRecord{
		{FromMemberID: "b", ToMemberID: "a", Amount: dec("15")},
	}

	assertZeroSum(t, engine.ComputeBalances(ms, expenses, settlements))
}

func assertZeroSum(t *testing.T, balances map[string]decimal.Decimal) {
	t.Helper()

	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b)
	}

	limit := domain.Tolerance.Mul(decimal.NewFromInt(int64(len(balances))))
	if sum.Abs().GreaterThan(limit) {
		t.Errorf("balances sum to %s, expected ~0 within %s", sum, limit)
	}
}
