package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	"github.com/evtfin/eventfin_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxLedgerEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

func toModelEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:                     d.EntryID,
		AccountID:                   d.AccountID,
		TransactionDate:             d.TransactionDate,
		FlowType:                    string(d.FlowType),
		Category:                    d.Category,
		Description:                 d.Description,
		Amount:                      d.Amount,
		Counterparty:                d.Counterparty,
		Notes:                       d.Notes,
		Status:                      string(d.Status),
		ReconciledBankTransactionID: d.ReconciledBankTransactionID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:                     m.EntryID,
		AccountID:                   m.AccountID,
		TransactionDate:             m.TransactionDate,
		FlowType:                    domain.FlowType(m.FlowType),
		Category:                    m.Category,
		Description:                 m.Description,
		Amount:                      m.Amount,
		Counterparty:                m.Counterparty,
		Notes:                       m.Notes,
		Status:                      domain.LedgerEntryStatus(m.Status),
		ReconciledBankTransactionID: m.ReconciledBankTransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const entryColumns = `entry_id, account_id, transaction_date, flow_type, category, description, amount, counterparty, notes, status, reconciled_bank_transaction_id, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.AccountID,
		&m.TransactionDate,
		&m.FlowType,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.Counterparty,
		&m.Notes,
		&m.Status,
		&m.ReconciledBankTransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const insertEntryQuery = `
	INSERT INTO ledger_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

func insertEntryArgs(m models.LedgerEntry) []any {
	return []any{
		m.EntryID, m.AccountID, m.TransactionDate, m.FlowType, m.Category,
		m.Description, m.Amount, m.Counterparty, m.Notes, m.Status,
		m.ReconciledBankTransactionID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := toModelEntry(entry)
	_, err := r.Pool.Exec(ctx, insertEntryQuery, insertEntryArgs(m)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: ledger entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return fmt.Errorf("failed to save ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

func (r *PgxLedgerEntryRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) (portsrepo.BatchOutcome, error) {
	outcome := portsrepo.BatchOutcome{Failed: make(map[string]error)}
	if len(entries) == 0 {
		return outcome, nil
	}

	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(insertEntryQuery, insertEntryArgs(toModelEntry(entry))...)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, entry := range entries {
		if _, err := results.Exec(); err != nil {
			outcome.Failed[entry.EntryID] = fmt.Errorf("failed to save ledger entry %s: %w", entry.EntryID, err)
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, entry.EntryID)
	}
	return outcome, nil
}

func (r *PgxLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	d := toDomainEntry(m)
	return &d, nil
}

func (r *PgxLedgerEntryRepository) ListEntriesByAccount(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	// NULLS LAST keeps dateless entries at the end so iteration order is
	// stable for the auto-reconcile orchestrator.
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY transaction_date NULLS LAST, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for account %s: %w", accountID, err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entry rows: %w", err)
	}
	return entries, nil
}

func (r *PgxLedgerEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := toModelEntry(entry)
	// The reconciliation link column is deliberately absent from this
	// statement; only the dedicated methods below touch it.
	query := `
		UPDATE ledger_entries
		SET transaction_date = $2, flow_type = $3, category = $4, description = $5,
		    amount = $6, counterparty = $7, notes = $8, status = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.TransactionDate, m.FlowType, m.Category, m.Description,
		m.Amount, m.Counterparty, m.Notes, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %s: %w", m.EntryID, apperrors.ErrNotFound)
	}
	return nil
}

const setReconciliationQuery = `
	UPDATE ledger_entries
	SET reconciled_bank_transaction_id = $2, status = 'COMPLETED',
	    last_updated_at = $3, last_updated_by = $4
	WHERE entry_id = $1;
`

func (r *PgxLedgerEntryRepository) SetReconciliation(ctx context.Context, entryID string, bankTransactionID string, userID string) error {
	tag, err := r.Pool.Exec(ctx, setReconciliationQuery, entryID, bankTransactionID, time.Now(), userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique index on reconciled_bank_transaction_id: the transaction
			// already backs another entry.
			return fmt.Errorf("bank transaction %s: %w", bankTransactionID, apperrors.ErrDuplicateReconciliation)
		}
		return fmt.Errorf("failed to set reconciliation on entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLedgerEntryRepository) ClearReconciliation(ctx context.Context, entryID string, userID string) error {
	// NULL, not empty string: the link column must be genuinely absent so the
	// unique index frees the bank transaction for reuse.
	query := `
		UPDATE ledger_entries
		SET reconciled_bank_transaction_id = NULL, status = 'PENDING',
		    last_updated_at = $2, last_updated_by = $3
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, entryID, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear reconciliation on entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLedgerEntryRepository) ApplyReconciliations(ctx context.Context, updates []portsrepo.ReconciliationUpdate, userID string) (portsrepo.BatchOutcome, error) {
	outcome := portsrepo.BatchOutcome{Failed: make(map[string]error)}
	if len(updates) == 0 {
		return outcome, nil
	}

	now := time.Now()
	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(setReconciliationQuery, u.EntryID, u.BankTransactionID, now, userID)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, u := range updates {
		tag, err := results.Exec()
		switch {
		case err != nil:
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				outcome.Failed[u.EntryID] = fmt.Errorf("bank transaction %s: %w", u.BankTransactionID, apperrors.ErrDuplicateReconciliation)
			} else {
				outcome.Failed[u.EntryID] = fmt.Errorf("failed to set reconciliation on entry %s: %w", u.EntryID, err)
			}
		case tag.RowsAffected() == 0:
			outcome.Failed[u.EntryID] = fmt.Errorf("ledger entry %s: %w", u.EntryID, apperrors.ErrNotFound)
		default:
			outcome.Succeeded = append(outcome.Succeeded, u.EntryID)
		}
	}
	return outcome, nil
}

func (r *PgxLedgerEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLedgerEntryRepository) DeleteEntries(ctx context.Context, entryIDs []string) (portsrepo.BatchOutcome, error) {
	outcome := portsrepo.BatchOutcome{Failed: make(map[string]error)}
	if len(entryIDs) == 0 {
		return outcome, nil
	}

	batch := &pgx.Batch{}
	for _, id := range entryIDs {
		batch.Queue(`DELETE FROM ledger_entries WHERE entry_id = $1;`, id)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, id := range entryIDs {
		tag, err := results.Exec()
		switch {
		case err != nil:
			outcome.Failed[id] = fmt.Errorf("failed to delete ledger entry %s: %w", id, err)
		case tag.RowsAffected() == 0:
			outcome.Failed[id] = fmt.Errorf("ledger entry %s: %w", id, apperrors.ErrNotFound)
		default:
			outcome.Succeeded = append(outcome.Succeeded, id)
		}
	}
	return outcome, nil
}
