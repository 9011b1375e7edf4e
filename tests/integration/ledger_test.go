package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/iho/splitledger/internal/adapter/repository/postgres"
	"github.com/iho/splitledger/internal/domain"
)

func TestLedgerLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := newIntegrationDB(t)
	testDB.TruncateAll(ctx)
	server := newTestServer(t, testDB)

	// Create a ledger with two members
	status, body := doJSON(t, http.MethodPost, server.URL+"/api/v1/ledgers", map[string]any{
		"name": "apartment",
		"members": []map[string]string{
			{"id": "alice", "display_name": "Alice"},
			{"id": "bob", "display_name": "Bob"},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}

	var created struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Members []struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"members"`
	}
	decodeJSON(t, body, &created)

	if created.ID == "" {
		t.Fatalf("expected generated ledger ID")
	}
	if len(created.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(created.Members))
	}

	// Fetch it back
	status, body = doJSON(t, http.MethodGet, server.URL+"/api/v1/ledgers/"+created.ID, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var fetched struct {
		Name string `json:"name"`
	}
	decodeJSON(t, body, &fetched)
	if fetched.Name != "apartment" {
		t.Fatalf("expected name apartment, got %s", fetched.Name)
	}

	// Add a third member
	status, body = doJSON(t, http.MethodPost, server.URL+"/api/v1/ledgers/"+created.ID+"/members", map[string]string{
		"id":           "carol",
		"display_name": "Carol",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 adding member, got %d: %s", status, body)
	}

	// Duplicate member is rejected
	status, body = doJSON(t, http.MethodPost, server.URL+"/api/v1/ledgers/"+created.ID+"/members", map[string]string{
		"id":           "carol",
		"display_name": "Carol again",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate member, got %d: %s", status, body)
	}

	// Delete the ledger
	status, body = doJSON(t, http.MethodDelete, server.URL+"/api/v1/ledgers/"+created.ID, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204 deleting ledger, got %d: %s", status, body)
	}

	status, _ = doJSON(t, http.MethodGet, server.URL+"/api/v1/ledgers/"+created.ID, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}

func TestListByMemberOrderIsStable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := newIntegrationDB(t)
	testDB.TruncateAll(ctx)

	repo := postgres.NewLedgerRepository(testDB.Pool)

	// Two ledgers sharing one creation timestamp: the reconciler walks them
	// repeatedly and their relative order must not flip between reads.
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, id := range []string{"led-b", "led-a"} {
		ledger := &domain.Ledger{
			ID:        id,
			Name:      id,
			CreatedAt: created,
			UpdatedAt: created,
			Members: []domain.Member{
				{ID: "alice", DisplayName: "Alice", JoinedAt: created},
			},
		}
		if err := repo.Create(ctx, ledger); err != nil {
			t.Fatalf("failed to create ledger %s: %v", id, err)
		}
	}

	for pass := 0; pass < 3; pass++ {
		ledgers, err := repo.ListByMember(ctx, "alice")
		if err != nil {
			t.Fatalf("ListByMember: %v", err)
		}
		if len(ledgers) != 2 {
			t.Fatalf("expected 2 ledgers, got %d", len(ledgers))
		}
		if ledgers[0].ID != "led-a" || ledgers[1].ID != "led-b" {
			t.Fatalf("pass %d: expected id order led-a, led-b, got %s, %s",
				pass, ledgers[0].ID, ledgers[1].ID)
		}
	}
}
