package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/splitledger/internal/adapter/http/handler"
	"github.com/iho/splitledger/internal/adapter/http/handler/mocks"
	"github.com/iho/splitledger/internal/domain"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockLedgerService, *mocks.MockObligationService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ledgerSvc := mocks.NewMockLedgerService(ctrl)
	obligationSvc := mocks.NewMockObligationService(ctrl)

	router := NewRouter(RouterConfig{
		LedgerHandler:     handler.NewLedgerHandler(ledgerSvc),
		ExpenseHandler:    handler.NewExpenseHandler(mocks.NewMockExpenseService(ctrl)),
		SettlementHandler: handler.NewSettlementHandler(mocks.NewMockSettlementService(ctrl)),
		CardHandler:       handler.NewCardHandler(mocks.NewMockCardService(ctrl)),
		ObligationHandler: handler.NewObligationHandler(obligationSvc),
		HealthHandler:     handler.NewHealthHandler(nil, nil),
	})

	return router, ledgerSvc, obligationSvc
}

func TestRouterHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}

func TestRouterDispatchesLedgerGet(t *testing.T) {
	router, ledgerSvc, _ := newTestRouter(t)

	ledgerSvc.EXPECT().GetLedger(gomock.Any(), "l1").Return(&domain.Ledger{ID: "l1", Name: "trip"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledgers/l1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"l1"`)
}

func TestRouterDispatchesReconcile(t *testing.T) {
	router, _, obligationSvc := newTestRouter(t)

	obligationSvc.EXPECT().Reconcile(gomock.Any(), "alice").Return(nil, domain.ErrReconciliationAborted)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/alice/obligations/reconcile", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
