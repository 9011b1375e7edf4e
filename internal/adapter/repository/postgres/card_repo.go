package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/splitledger/internal/domain"
)

// CardRepository implements usecase.CardRepository.
type CardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository.
func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

// Create inserts a card. Re-registering the same (bank, type) for a user
// replaces its closing day.
func (r *CardRepository) Create(ctx context.Context, card *domain.Card) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO cards (id, user_id, bank_name, card_type, closing_day, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, bank_name, card_type)
		 DO UPDATE SET closing_day = EXCLUDED.closing_day`,
		card.ID, card.UserID, card.BankName, card.CardType, card.ClosingDay, card.CreatedAt,
	)
	return err
}

// GetByID retrieves a card by ID.
func (r *CardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, bank_name, card_type, closing_day, created_at FROM cards WHERE id = $1`,
		id,
	).Scan(&card.ID, &card.UserID, &card.BankName, &card.CardType, &card.ClosingDay, &card.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// ListByUser lists a user's cards.
func (r *CardRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Card, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, bank_name, card_type, closing_day, created_at
		 FROM cards WHERE user_id = $1 ORDER BY bank_name, card_type`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(&card.ID, &card.UserID, &card.BankName, &card.CardType, &card.ClosingDay, &card.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}

// Delete removes a card.
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}
