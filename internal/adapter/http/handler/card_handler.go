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

// CardService defines the behavior needed by CardHandler.
type CardService interface {
	RegisterCard(ctx context.Context, userID string, input usecase.RegisterCardInput) (*domain.Card, error)
	ListCards(ctx context.Context, userID string) ([]*domain.Card, error)
	RemoveCard(ctx context.Context, userID, cardID string) error
}

// CardHandler handles card registry HTTP requests.
type CardHandler struct {
	cardUC CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardUC CardService) *CardHandler {
	return &CardHandler{cardUC: cardUC}
}

// Register registers a card for a user.
func (h *CardHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.RegisterCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	card, err := h.cardUC.RegisterCard(r.Context(), userID, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register card", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CardFromDomain(card))
}

// List lists a user's registered cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	cards, err := h.cardUC.ListCards(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list cards", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards": dto.CardsFromDomain(cards),
		"total": len(cards),
	})
}

// Remove deletes one of the user's cards.
func (h *CardHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	cardID := chi.URLParam(r, "cardID")

	if err := h.cardUC.RemoveCard(r.Context(), userID, cardID); err != nil {
		writeError(w, mapDomainError(err), "failed to remove card", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
