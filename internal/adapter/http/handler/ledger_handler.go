package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/engine"
	"github.com/iho/splitledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CreateLedger(ctx context.Context, input usecase.CreateLedgerInput) (*domain.Ledger, error)
	GetLedger(ctx context.Context, id string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context, input usecase.ListLedgersInput) ([]*domain.Ledger, error)
	AddMember(ctx context.Context, ledgerID string, input usecase.MemberInput) (*domain.Ledger, error)
	DeleteLedger(ctx context.Context, id string) error
	GetBalances(ctx context.Context, ledgerID string) ([]usecase.MemberBalance, error)
	GetSettlementPlan(ctx context.Context, ledgerID string) ([]engine.Transfer, error)
}

// LedgerHandler handles ledger-related HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Create creates a new ledger.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ledger, err := h.ledgerUC.CreateLedger(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerFromDomain(ledger))
}

// Get retrieves a ledger by ID.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing ledger ID", "")
		return
	}

	ledger, err := h.ledgerUC.GetLedger(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// List lists ledgers.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	ledgers, err := h.ledgerUC.ListLedgers(r.Context(), usecase.ListLedgersInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ledgers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListLedgersResponse{
		Ledgers: dto.LedgersFromDomain(ledgers),
		Total:   int64(len(ledgers)),
	})
}

// AddMember adds a member to a ledger.
func (h *LedgerHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ledger, err := h.ledgerUC.AddMember(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add member", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerFromDomain(ledger))
}

// Delete removes a ledger and everything recorded in it.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ledgerUC.DeleteLedger(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete ledger", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Balances returns every member's net position in the ledger.
func (h *LedgerHandler) Balances(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	balances, err := h.ledgerUC.GetBalances(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ledger_id": id,
		"balances":  dto.BalancesFromUseCase(balances),
	})
}

// SettlementPlan returns the minimized transfer list that settles the ledger.
func (h *LedgerHandler) SettlementPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	transfers, err := h.ledgerUC.GetSettlementPlan(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute settlement plan", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ledger_id": id,
		"transfers": dto.TransfersFromEngine(transfers),
	})
}
