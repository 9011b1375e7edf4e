package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// ObligationService defines the behavior needed by ObligationHandler.
type ObligationService interface {
	Reconcile(ctx context.Context, userID string) (*usecase.ReconcileResult, error)
	ListObligations(ctx context.Context, userID string) ([]*domain.ObligationRecord, error)
}

// ObligationHandler handles obligation projection HTTP requests.
type ObligationHandler struct {
	obligationUC ObligationService
}

// NewObligationHandler creates a new ObligationHandler.
func NewObligationHandler(obligationUC ObligationService) *ObligationHandler {
	return &ObligationHandler{obligationUC: obligationUC}
}

// List returns the user's materialized obligations.
func (h *ObligationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	records, err := h.obligationUC.ListObligations(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list obligations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"obligations": dto.ObligationsFromDomain(records),
		"total":       len(records),
	})
}

// Reconcile re-derives the user's obligation projection from source expenses.
func (h *ObligationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.obligationUC.Reconcile(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "reconciliation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconcileResponse{
		Created: result.Created,
		Updated: result.Updated,
		Deleted: result.Deleted,
	})
}
