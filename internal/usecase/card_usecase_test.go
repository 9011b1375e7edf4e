package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
	"github.com/iho/splitledger/internal/usecase/mocks"
)

func TestRegisterCard(t *testing.T) {
	cardRepo := mocks.NewMockCardRepository()
	uc := usecase.NewCardUseCase(cardRepo, mocks.NewMockIDGenerator())

	card, err := uc.RegisterCard(context.Background(), "alice", usecase.RegisterCardInput{
		BankName:   "Galicia",
		CardType:   "Visa",
		ClosingDay: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, card.ClosingDay)
	assert.Equal(t, domain.CardKey{BankName: "Galicia", CardType: "Visa"}, card.Key())

	cards, err := uc.ListCards(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestRegisterCardDefaultClosingDay(t *testing.T) {
	uc := usecase.NewCardUseCase(mocks.NewMockCardRepository(), mocks.NewMockIDGenerator())

	card, err := uc.RegisterCard(context.Background(), "alice", usecase.RegisterCardInput{
		BankName: "Santander",
		CardType: "Mastercard",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultClosingDay, card.ClosingDay)
}

func TestRegisterCardInvalid(t *testing.T) {
	uc := usecase.NewCardUseCase(mocks.NewMockCardRepository(), mocks.NewMockIDGenerator())

	_, err := uc.RegisterCard(context.Background(), "alice", usecase.RegisterCardInput{
		BankName:   "Galicia",
		CardType:   "Visa",
		ClosingDay: 40,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCard)

	_, err = uc.RegisterCard(context.Background(), "alice", usecase.RegisterCardInput{CardType: "Visa"})
	assert.ErrorIs(t, err, domain.ErrInvalidCard)
}

func TestRemoveCardOwnership(t *testing.T) {
	cardRepo := mocks.NewMockCardRepository()
	uc := usecase.NewCardUseCase(cardRepo, mocks.NewMockIDGenerator())

	card, err := uc.RegisterCard(context.Background(), "alice", usecase.RegisterCardInput{
		BankName: "Galicia",
		CardType: "Visa",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.RemoveCard(context.Background(), "bob", card.ID), domain.ErrCardNotFound)

	require.NoError(t, uc.RemoveCard(context.Background(), "alice", card.ID))
	cards, err := uc.ListCards(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
