package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// ObligationRepository implements usecase.ObligationRepository. All mutations
// run on a caller-owned transaction so one reconciliation batch commits
// atomically.
type ObligationRepository struct {
	pool *pgxpool.Pool
}

// NewObligationRepository creates a new ObligationRepository.
func NewObligationRepository(pool *pgxpool.Pool) *ObligationRepository {
	return &ObligationRepository{pool: pool}
}

// ListByUser lists every obligation record of a user.
func (r *ObligationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ObligationRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, description, amount, due_month, card_bank, card_type,
		        source_scope, reimbursements, created_at, last_modified_at
		 FROM obligations WHERE user_id = $1 ORDER BY due_month, card_bank, card_type`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ObligationRecord
	for rows.Next() {
		var (
			rec            domain.ObligationRecord
			reimbursements []byte
		)
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Description, &rec.Amount, &rec.DueMonth,
			&rec.Card.BankName, &rec.Card.CardType, &rec.SourceScope,
			&reimbursements, &rec.CreatedAt, &rec.LastModifiedAt,
		)
		if err != nil {
			return nil, err
		}
		// pgx hands timestamps back in the session location; the due month
		// feeds BucketKey equality and must stay a UTC month marker.
		rec.DueMonth = domain.MonthStart(rec.DueMonth)
		if err := json.Unmarshal(reimbursements, &rec.Reimbursements); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// CreateTx inserts an obligation record inside the given transaction.
func (r *ObligationRepository) CreateTx(ctx context.Context, tx usecase.Transaction, record *domain.ObligationRecord) error {
	reimbursements, err := json.Marshal(record.Reimbursements)
	if err != nil {
		return err
	}

	pgxTx := tx.(*Tx).PgxTx()
	_, err = pgxTx.Exec(ctx,
		`INSERT INTO obligations (id, user_id, description, amount, due_month, card_bank, card_type,
		                          source_scope, reimbursements, created_at, last_modified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		record.ID, record.UserID, record.Description, record.Amount, record.DueMonth,
		record.Card.BankName, record.Card.CardType, record.SourceScope,
		reimbursements, record.CreatedAt, record.LastModifiedAt,
	)
	return err
}

// UpdateTx rewrites an obligation record inside the given transaction. The
// creation time is never touched.
func (r *ObligationRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, record *domain.ObligationRecord) error {
	reimbursements, err := json.Marshal(record.Reimbursements)
	if err != nil {
		return err
	}

	pgxTx := tx.(*Tx).PgxTx()
	tag, err := pgxTx.Exec(ctx,
		`UPDATE obligations SET
			description = $2, amount = $3, due_month = $4, card_bank = $5, card_type = $6,
			source_scope = $7, reimbursements = $8, last_modified_at = $9
		 WHERE id = $1`,
		record.ID, record.Description, record.Amount, record.DueMonth,
		record.Card.BankName, record.Card.CardType, record.SourceScope,
		reimbursements, record.LastModifiedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrObligationNotFound
	}
	return nil
}

// DeleteTx removes an obligation record inside the given transaction.
func (r *ObligationRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	tag, err := pgxTx.Exec(ctx, `DELETE FROM obligations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrObligationNotFound
	}
	return nil
}
