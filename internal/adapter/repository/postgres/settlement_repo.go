package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/splitledger/internal/domain"
)

// SettlementRepository implements usecase.SettlementRepository.
type SettlementRepository struct {
	pool *pgxpool.Pool
}

// NewSettlementRepository creates a new SettlementRepository.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

// Create inserts a settlement record.
func (r *SettlementRepository) Create(ctx context.Context, record *domain.SettlementRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settlements (id, ledger_id, from_member_id, to_member_id, amount, settled_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.LedgerID, record.FromMemberID, record.ToMemberID, record.Amount, record.SettledAt,
	)
	return err
}

// ListByLedger lists a ledger's settlement records, oldest first.
func (r *SettlementRepository) ListByLedger(ctx context.Context, ledgerID string) ([]*domain.SettlementRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, ledger_id, from_member_id, to_member_id, amount, settled_at
		 FROM settlements WHERE ledger_id = $1 ORDER BY settled_at, id`,
		ledgerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.SettlementRecord
	for rows.Next() {
		var rec domain.SettlementRecord
		if err := rows.Scan(&rec.ID, &rec.LedgerID, &rec.FromMemberID, &rec.ToMemberID, &rec.Amount, &rec.SettledAt); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
