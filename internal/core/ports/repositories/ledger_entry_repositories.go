package repositories

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// ReconciliationUpdate is one staged link between a ledger entry and a bank
// transaction, applied as part of a batch.
type ReconciliationUpdate struct {
	EntryID           string
	BankTransactionID string
}

// BatchOutcome reports the per-item result of a batch write. Failed items
// carry the error that stopped them; the rest of the batch still applies.
type BatchOutcome struct {
	Succeeded []string         // entry IDs applied
	Failed    map[string]error // entry ID -> failure
}

// LedgerEntryReader defines read operations for ledger entries.
type LedgerEntryReader interface {
	// FindEntryByID retrieves a specific ledger entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByAccount retrieves all ledger entries of an account in a
	// stable order (transaction date, then entry ID; dateless entries last).
	ListEntriesByAccount(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)
}

// LedgerEntryWriter defines write operations for ledger entries.
type LedgerEntryWriter interface {
	// SaveEntry persists a new ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// SaveEntries persists multiple new ledger entries (bulk input).
	SaveEntries(ctx context.Context, entries []domain.LedgerEntry) (BatchOutcome, error)

	// UpdateEntry updates the editable fields of an entry. The reconciliation
	// link is not touched here; only the dedicated methods below change it.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// SetReconciliation stores the bank-transaction link on the entry and
	// marks it completed.
	SetReconciliation(ctx context.Context, entryID string, bankTransactionID string, userID string) error

	// ClearReconciliation removes the bank-transaction link entirely (the
	// stored field is absent/NULL afterwards, not an empty string) and
	// reverts the entry status to pending.
	ClearReconciliation(ctx context.Context, entryID string, userID string) error

	// ApplyReconciliations applies a batch of staged links. Individual
	// failures do not roll back the rest of the batch.
	ApplyReconciliations(ctx context.Context, updates []ReconciliationUpdate, userID string) (BatchOutcome, error)

	// DeleteEntry removes a ledger entry.
	DeleteEntry(ctx context.Context, entryID string) error

	// DeleteEntries removes multiple ledger entries, collecting per-item errors.
	DeleteEntries(ctx context.Context, entryIDs []string) (BatchOutcome, error)
}

// LedgerEntryRepositoryFacade combines all ledger-entry repository interfaces.
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
