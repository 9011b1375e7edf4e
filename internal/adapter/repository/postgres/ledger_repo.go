package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/splitledger/internal/domain"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Create persists a ledger and its initial members atomically.
func (r *LedgerRepository) Create(ctx context.Context, ledger *domain.Ledger) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO ledgers (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		ledger.ID, ledger.Name, ledger.CreatedAt, ledger.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, m := range ledger.Members {
		_, err = tx.Exec(ctx,
			`INSERT INTO ledger_members (ledger_id, member_id, display_name, joined_at) VALUES ($1, $2, $3, $4)`,
			ledger.ID, m.ID, m.DisplayName, m.JoinedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a ledger with its members.
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	var ledger domain.Ledger
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM ledgers WHERE id = $1`,
		id,
	).Scan(&ledger.ID, &ledger.Name, &ledger.CreatedAt, &ledger.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLedgerNotFound
		}
		return nil, err
	}

	members, err := r.loadMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	ledger.Members = members

	return &ledger, nil
}

// List lists ledgers ordered by creation time, newest first.
func (r *LedgerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Ledger, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM ledgers ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledgers, err := scanLedgers(rows)
	if err != nil {
		return nil, err
	}

	for _, l := range ledgers {
		members, err := r.loadMembers(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		l.Members = members
	}

	return ledgers, nil
}

// ListByMember lists every ledger the member belongs to.
func (r *LedgerRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Ledger, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.id, l.name, l.created_at, l.updated_at
		 FROM ledgers l
		 JOIN ledger_members lm ON lm.ledger_id = l.id
		 WHERE lm.member_id = $1
		 ORDER BY l.created_at DESC, l.id`,
		memberID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledgers, err := scanLedgers(rows)
	if err != nil {
		return nil, err
	}

	for _, l := range ledgers {
		members, err := r.loadMembers(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		l.Members = members
	}

	return ledgers, nil
}

// AddMember adds a member to an existing ledger.
func (r *LedgerRepository) AddMember(ctx context.Context, ledgerID string, member domain.Member) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO ledger_members (ledger_id, member_id, display_name, joined_at)
		 SELECT $1, $2, $3, $4 WHERE EXISTS (SELECT 1 FROM ledgers WHERE id = $1)`,
		ledgerID, member.ID, member.DisplayName, member.JoinedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotFound
	}

	_, err = r.pool.Exec(ctx, `UPDATE ledgers SET updated_at = $2 WHERE id = $1`, ledgerID, member.JoinedAt)
	return err
}

// Delete removes a ledger. Expenses, settlements, and memberships go with it
// via ON DELETE CASCADE; obligation records are an independent projection and
// stay behind.
func (r *LedgerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ledgers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotFound
	}
	return nil
}

func (r *LedgerRepository) loadMembers(ctx context.Context, ledgerID string) ([]domain.Member, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT member_id, display_name, joined_at FROM ledger_members WHERE ledger_id = $1 ORDER BY joined_at, member_id`,
		ledgerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func scanLedgers(rows pgx.Rows) ([]*domain.Ledger, error) {
	var ledgers []*domain.Ledger
	for rows.Next() {
		var l domain.Ledger
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		ledgers = append(ledgers, &l)
	}
	return ledgers, rows.Err()
}
