package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidCard = errors.New("invalid card")

// DefaultClosingDay is assumed when a card has no closing day configured.
const DefaultClosingDay = 1

// Card is one registered credit card for a user. The closing day bounds the
// billing cycle in which a charge accrues before becoming due.
type Card struct {
	ID         string
	UserID     string
	BankName   string
	CardType   string
	ClosingDay int
	CreatedAt  time.Time
}

// Key returns the card's aggregation key.
func (c *Card) Key() CardKey {
	return CardKey{BankName: c.BankName, CardType: c.CardType}
}

// Validate checks the structural invariants of a card.
func (c *Card) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("%w: user required", ErrInvalidCard)
	}
	if c.BankName == "" {
		return fmt.Errorf("%w: bank name required", ErrInvalidCard)
	}
	if c.CardType == "" {
		return fmt.Errorf("%w: card type required", ErrInvalidCard)
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return fmt.Errorf("%w: closing day must be in 1..31", ErrInvalidCard)
	}
	return nil
}
