package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSettlementPlanAndRecording(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := newIntegrationDB(t)
	testDB.TruncateAll(ctx)
	server := newTestServer(t, testDB)

	ledger := testDB.CreateTestLedger(ctx, "trip", "alice", "bob", "carol")
	testDB.CreateTestExpense(ctx, ledger.ID, "alice", decimal.NewFromInt(90), "alice", "bob", "carol")

	// The minimal plan: bob and carol each pay alice 30
	status, body := doJSON(t, http.MethodGet, server.URL+"/api/v1/ledgers/"+ledger.ID+"/settlement-plan", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var plan struct {
		Transfers []struct {
			FromMemberID string          `json:"from_member_id"`
			ToMemberID   string          `json:"to_member_id"`
			Amount       decimal.Decimal `json:"amount"`
		} `json:"transfers"`
	}
	decodeJSON(t, body, &plan)

	if len(plan.Transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d: %s", len(plan.Transfers), body)
	}
	for _, tr := range plan.Transfers {
		if tr.ToMemberID != "alice" {
			t.Fatalf("expected transfers to alice, got %s", tr.ToMemberID)
		}
		if !tr.Amount.Equal(decimal.NewFromInt(30)) {
			t.Fatalf("expected transfer of 30, got %s", tr.Amount)
		}
	}

	// Bob pays his 30; the plan shrinks to carol's transfer
	status, body = doJSON(t, http.MethodPost, server.URL+"/api/v1/ledgers/"+ledger.ID+"/settlements", map[string]any{
		"from_member_id": "bob",
		"to_member_id":   "alice",
		"amount":         "30",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 recording settlement, got %d: %s", status, body)
	}

	status, body = doJSON(t, http.MethodGet, server.URL+"/api/v1/ledgers/"+ledger.ID+"/settlement-plan", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	decodeJSON(t, body, &plan)

	if len(plan.Transfers) != 1 {
		t.Fatalf("expected 1 transfer after settlement, got %d: %s", len(plan.Transfers), body)
	}
	if plan.Transfers[0].FromMemberID != "carol" {
		t.Fatalf("expected carol to owe, got %s", plan.Transfers[0].FromMemberID)
	}
}

func TestSelfSettlementRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := newIntegrationDB(t)
	testDB.TruncateAll(ctx)
	server := newTestServer(t, testDB)

	ledger := testDB.CreateTestLedger(ctx, "trip", "alice", "bob")

	status, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/ledgers/"+ledger.ID+"/settlements", map[string]any{
		"from_member_id": "alice",
		"to_member_id":   "alice",
		"amount":         "10",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for self settlement, got %d: %s", status, body)
	}
}
