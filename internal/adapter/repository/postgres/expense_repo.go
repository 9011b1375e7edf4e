package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// ExpenseRepository implements usecase.ExpenseRepository. Shares are stored
// as jsonb; participant order is kept in a separate array column because it
// drives reimbursement ordering.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `id, ledger_id, description, amount, payer_id, participant_ids,
	split_policy, shares, is_card_purchase, card_bank, card_type, transaction_date,
	is_installment, installment_count, installment_amount, payoff_month, created_at, updated_at`

// Create inserts a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	shares, err := json.Marshal(expense.Shares)
	if err != nil {
		return err
	}

	var cardBank, cardType *string
	if expense.Card != nil {
		cardBank, cardType = &expense.Card.BankName, &expense.Card.CardType
	}

	var payoff *time.Time
	if !expense.PayoffMonth.IsZero() {
		payoff = &expense.PayoffMonth
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO expenses (`+expenseColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		expense.ID, expense.LedgerID, expense.Description, expense.Amount, expense.PayerID,
		expense.ParticipantIDs, string(expense.SplitPolicy), shares, expense.IsCardPurchase,
		cardBank, cardType, expense.TransactionDate, expense.IsInstallment,
		expense.InstallmentCount, expense.InstallmentAmount, payoff,
		expense.CreatedAt, expense.UpdatedAt,
	)
	return err
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Update rewrites an existing expense.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	shares, err := json.Marshal(expense.Shares)
	if err != nil {
		return err
	}

	var cardBank, cardType *string
	if expense.Card != nil {
		cardBank, cardType = &expense.Card.BankName, &expense.Card.CardType
	}

	var payoff *time.Time
	if !expense.PayoffMonth.IsZero() {
		payoff = &expense.PayoffMonth
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE expenses SET
			description = $2, amount = $3, payer_id = $4, participant_ids = $5,
			split_policy = $6, shares = $7, is_card_purchase = $8, card_bank = $9,
			card_type = $10, transaction_date = $11, is_installment = $12,
			installment_count = $13, installment_amount = $14, payoff_month = $15,
			updated_at = $16
		 WHERE id = $1`,
		expense.ID, expense.Description, expense.Amount, expense.PayerID, expense.ParticipantIDs,
		string(expense.SplitPolicy), shares, expense.IsCardPurchase, cardBank, cardType,
		expense.TransactionDate, expense.IsInstallment, expense.InstallmentCount,
		expense.InstallmentAmount, payoff, expense.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// ListByLedger lists a ledger's expenses, oldest first.
func (r *ExpenseRepository) ListByLedger(ctx context.Context, ledgerID string) ([]*domain.Expense, error) {
	return r.list(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE ledger_id = $1 ORDER BY created_at, id`,
		ledgerID,
	)
}

// ListCardPurchases lists a ledger's card expenses, oldest first.
func (r *ExpenseRepository) ListCardPurchases(ctx context.Context, ledgerID string) ([]*domain.Expense, error) {
	return r.list(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE ledger_id = $1 AND is_card_purchase ORDER BY created_at, id`,
		ledgerID,
	)
}

func (r *ExpenseRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Expense, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		expense  domain.Expense
		shares   []byte
		cardBank *string
		cardType *string
		payoff   *time.Time
	)

	err := row.Scan(
		&expense.ID, &expense.LedgerID, &expense.Description, &expense.Amount, &expense.PayerID,
		&expense.ParticipantIDs, &expense.SplitPolicy, &shares, &expense.IsCardPurchase,
		&cardBank, &cardType, &expense.TransactionDate, &expense.IsInstallment,
		&expense.InstallmentCount, &expense.InstallmentAmount, &payoff,
		&expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	expense.Shares = make(map[string]decimal.Decimal)
	if err := json.Unmarshal(shares, &expense.Shares); err != nil {
		return nil, err
	}

	if cardBank != nil && cardType != nil {
		expense.Card = &domain.CardKey{BankName: *cardBank, CardType: *cardType}
	}
	// Billing-cycle resolution reads Day() off the transaction date, so it
	// must come back as the stored civil date regardless of the session
	// location pgx scanned it in.
	expense.TransactionDate = domain.DateOnly(expense.TransactionDate)
	if payoff != nil {
		expense.PayoffMonth = domain.MonthStart(*payoff)
	}

	return &expense, nil
}
