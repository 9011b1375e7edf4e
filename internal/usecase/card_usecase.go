package usecase

import (
	"context"
	"time"

	"github.com/iho/splitledger/internal/domain"
)

// CardUseCase manages a user's registered credit cards.
type CardUseCase struct {
	cardRepo CardRepository
	idGen    IDGenerator
}

// NewCardUseCase creates a new CardUseCase.
func NewCardUseCase(cardRepo CardRepository, idGen IDGenerator) *CardUseCase {
	return &CardUseCase{cardRepo: cardRepo, idGen: idGen}
}

// RegisterCardInput represents input for registering a card.
type RegisterCardInput struct {
	BankName   string
	CardType   string
	ClosingDay int
}

// RegisterCard registers a card for a user. An unset closing day falls back
// to the default.
func (uc *CardUseCase) RegisterCard(ctx context.Context, userID string, input RegisterCardInput) (*domain.Card, error) {
	closingDay := input.ClosingDay
	if closingDay == 0 {
		closingDay = domain.DefaultClosingDay
	}

	card := &domain.Card{
		ID:         uc.idGen.Generate(),
		UserID:     userID,
		BankName:   input.BankName,
		CardType:   input.CardType,
		ClosingDay: closingDay,
		CreatedAt:  time.Now().UTC(),
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// ListCards lists a user's registered cards.
func (uc *CardUseCase) ListCards(ctx context.Context, userID string) ([]*domain.Card, error) {
	return uc.cardRepo.ListByUser(ctx, userID)
}

// RemoveCard deletes a card owned by the user.
func (uc *CardUseCase) RemoveCard(ctx context.Context, userID, cardID string) error {
	card, err := uc.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.UserID != userID {
		return domain.ErrCardNotFound
	}
	return uc.cardRepo.Delete(ctx, cardID)
}
