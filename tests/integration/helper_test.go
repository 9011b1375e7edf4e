package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	adaptershttp "github.com/iho/splitledger/internal/adapter/http"
	"github.com/iho/splitledger/internal/adapter/http/handler"
	"github.com/iho/splitledger/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/splitledger/internal/adapter/repository/redis"
	infraredis "github.com/iho/splitledger/internal/infrastructure/redis"
	"github.com/iho/splitledger/internal/usecase"
	"github.com/iho/splitledger/tests/testutil"
)

func newIntegrationDB(t *testing.T) *testutil.TestDB {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	return testDB
}

// newTestServer wires real repositories against the test database and Redis
// into a full HTTP server.
func newTestServer(t *testing.T, testDB *testutil.TestDB) *httptest.Server {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	if err := redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	settlementRepo := postgres.NewSettlementRepository(pool)
	cardRepo := postgres.NewCardRepository(pool)
	obligationRepo := postgres.NewObligationRepository(pool)
	cache := redisrepo.NewCache(redisClient)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, expenseRepo, settlementRepo, cache, idGen)
	expenseUC := usecase.NewExpenseUseCase(ledgerRepo, expenseRepo, cache, idGen)
	settlementUC := usecase.NewSettlementUseCase(ledgerRepo, settlementRepo, cache, idGen)
	cardUC := usecase.NewCardUseCase(cardRepo, idGen)
	obligationUC := usecase.NewObligationUseCase(txManager, ledgerRepo, expenseRepo, cardRepo, obligationRepo, idGen, retrier, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		LedgerHandler:     handler.NewLedgerHandler(ledgerUC),
		ExpenseHandler:    handler.NewExpenseHandler(expenseUC),
		SettlementHandler: handler.NewSettlementHandler(settlementUC),
		CardHandler:       handler.NewCardHandler(cardUC),
		ObligationHandler: handler.NewObligationHandler(obligationUC),
		HealthHandler:     handler.NewHealthHandler(pool, redisClient),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}

	return resp.StatusCode, respBody
}

func decodeJSON(t *testing.T, data []byte, v any) {
	t.Helper()

	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to decode response %s: %v", data, err)
	}
}
