package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// SettlementService defines the behavior needed by SettlementHandler.
type SettlementService interface {
	RecordSettlement(ctx context.Context, ledgerID string, input usecase.RecordSettlementInput) (*domain.SettlementRecord, error)
	ListSettlements(ctx context.Context, ledgerID string) ([]*domain.SettlementRecord, error)
}

// SettlementHandler handles settlement-related HTTP requests.
type SettlementHandler struct {
	settlementUC SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

// Create records a confirmed settlement between two members.
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	ledgerID := chi.URLParam(r, "id")

	var req dto.RecordSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.settlementUC.RecordSettlement(r.Context(), ledgerID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record settlement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SettlementFromDomain(record))
}

// List lists a ledger's settlement records.
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	ledgerID := chi.URLParam(r, "id")

	records, err := h.settlementUC.ListSettlements(r.Context(), ledgerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list settlements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"settlements": dto.SettlementsFromDomain(records),
		"total":       len(records),
	})
}
