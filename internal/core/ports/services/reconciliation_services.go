package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// ReconciliationSvcFacade owns the reconciliation link between ledger
// entries and bank transactions: the manual confirm/cancel workflow, the
// candidate search, and the batch auto-reconcile orchestrator.
type ReconciliationSvcFacade interface {
	// Reconcile links one ledger entry to one bank transaction. It is
	// idempotent for the same pair and fails with
	// apperrors.ErrDuplicateReconciliation when the bank transaction already
	// backs a different entry.
	Reconcile(ctx context.Context, accountID string, entryID string, bankTransactionID string, userID string) error

	// ClearReconciliation removes the link and reverts the entry to pending.
	// No-op when the entry is already unreconciled.
	ClearReconciliation(ctx context.Context, accountID string, entryID string, userID string) error

	// IsReconciled reports whether the entry carries a reconciliation link.
	IsReconciled(ctx context.Context, accountID string, entryID string) (bool, error)

	// ListCandidates returns the bank transactions a user may link the entry
	// to: same flow type, equal amount, not consumed by another entry, not
	// already verified externally. Broader than auto-reconcile since a human
	// is vetting the result.
	ListCandidates(ctx context.Context, accountID string, entryID string) ([]domain.BankTransaction, error)

	// AutoReconcile attempts to link every unreconciled entry of the account
	// in one best-effort batch. Runs are serialized per account.
	AutoReconcile(ctx context.Context, accountID string, userID string) (*domain.AutoReconcileReport, error)
}
