package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/utils/matching"
)

// reconciliationService implements the ReconciliationSvcFacade interface.
// It is the only component that writes the entry <-> bank transaction link.
type reconciliationService struct {
	BaseService
	entryRepo   portsrepo.LedgerEntryRepositoryFacade
	bankRepo    portsrepo.BankTransactionReader
	accountRepo portsrepo.EventAccountReader

	// accountLocks serializes auto-reconcile runs per account.
	mu           sync.Mutex
	accountLocks map[string]*sync.Mutex
}

// NewReconciliationService creates a new reconciliation service. Linking is
// exact tuple matching; the scored engine configuration only applies to
// event matching.
func NewReconciliationService(
	entryRepo portsrepo.LedgerEntryRepositoryFacade,
	bankRepo portsrepo.BankTransactionReader,
	accountRepo portsrepo.EventAccountReader,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		entryRepo:    entryRepo,
		bankRepo:     bankRepo,
		accountRepo:  accountRepo,
		accountLocks: make(map[string]*sync.Mutex),
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// lockFor returns the mutex serializing auto-reconcile runs for an account.
func (s *reconciliationService) lockFor(accountID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.accountLocks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		s.accountLocks[accountID] = lock
	}
	return lock
}

func (s *reconciliationService) findOwnedEntry(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	if entry.AccountID != accountID {
		return nil, fmt.Errorf("ledger entry %s not in account %s: %w", entryID, accountID, apperrors.ErrNotFound)
	}
	return entry, nil
}

// consumedTransactions returns the bank transaction IDs already backing an
// entry of the account. Computed fresh on every call; the link state is never
// cached.
func (s *reconciliationService) consumedTransactions(ctx context.Context, accountID string) (map[string]string, error) {
	entries, err := s.entryRepo.ListEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	consumed := make(map[string]string) // bank txn ID -> entry ID
	for _, e := range entries {
		if e.IsReconciled() {
			consumed[*e.ReconciledBankTransactionID] = e.EntryID
		}
	}
	return consumed, nil
}

func (s *reconciliationService) Reconcile(ctx context.Context, accountID string, entryID string, bankTransactionID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	entry, err := s.findOwnedEntry(ctx, accountID, entryID)
	if err != nil {
		return err
	}

	if entry.IsReconciled() {
		if *entry.ReconciledBankTransactionID == bankTransactionID {
			// Same pair again is a no-op.
			return nil
		}
		return fmt.Errorf("%w: entry %s is already reconciled to a different bank transaction; clear it first", apperrors.ErrValidation, entryID)
	}
	if entry.Status == domain.EntryCancelled {
		return fmt.Errorf("%w: cannot reconcile a cancelled entry", apperrors.ErrValidation)
	}

	txn, err := s.bankRepo.FindBankTransactionByID(ctx, bankTransactionID)
	if err != nil {
		return fmt.Errorf("failed to find bank transaction %s: %w", bankTransactionID, err)
	}
	if txn.FinancialAccountID != account.FinancialAccountID {
		return fmt.Errorf("%w: bank transaction %s does not belong to the account's financial account", apperrors.ErrValidation, bankTransactionID)
	}
	if txn.FlowType != entry.FlowType {
		return fmt.Errorf("%w: flow type mismatch between entry and bank transaction", apperrors.ErrValidation)
	}

	consumed, err := s.consumedTransactions(ctx, accountID)
	if err != nil {
		return err
	}
	if holder, ok := consumed[bankTransactionID]; ok && holder != entryID {
		return fmt.Errorf("bank transaction %s already backs entry %s: %w", bankTransactionID, holder, apperrors.ErrDuplicateReconciliation)
	}

	if err := s.entryRepo.SetReconciliation(ctx, entryID, bankTransactionID, userID); err != nil {
		s.LogError(ctx, err, "Failed to set reconciliation",
			slog.String("entry_id", entryID),
			slog.String("bank_transaction_id", bankTransactionID))
		return fmt.Errorf("failed to reconcile entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Entry reconciled",
		slog.String("entry_id", entryID),
		slog.String("bank_transaction_id", bankTransactionID))
	return nil
}

func (s *reconciliationService) ClearReconciliation(ctx context.Context, accountID string, entryID string, userID string) error {
	entry, err := s.findOwnedEntry(ctx, accountID, entryID)
	if err != nil {
		return err
	}
	if !entry.IsReconciled() {
		return nil
	}
	if err := s.entryRepo.ClearReconciliation(ctx, entryID, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear reconciliation", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to clear reconciliation on entry %s: %w", entryID, err)
	}
	s.LogInfo(ctx, "Reconciliation cleared", slog.String("entry_id", entryID))
	return nil
}

func (s *reconciliationService) IsReconciled(ctx context.Context, accountID string, entryID string) (bool, error) {
	entry, err := s.findOwnedEntry(ctx, accountID, entryID)
	if err != nil {
		return false, err
	}
	return entry.IsReconciled(), nil
}

func (s *reconciliationService) ListCandidates(ctx context.Context, accountID string, entryID string) ([]domain.BankTransaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	entry, err := s.findOwnedEntry(ctx, accountID, entryID)
	if err != nil {
		return nil, err
	}

	consumed, err := s.consumedTransactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns, err := s.bankRepo.ListBankTransactions(ctx, account.FinancialAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	// No date or keyword filter here: a human is vetting, so the net is
	// wider than the auto-reconcile tuple.
	candidates := make([]domain.BankTransaction, 0)
	for _, txn := range txns {
		if txn.FlowType != entry.FlowType {
			continue
		}
		if !matching.AmountsEqual(txn.Amount, entry.Amount) {
			continue
		}
		if _, taken := consumed[txn.BankTransactionID]; taken {
			continue
		}
		if txn.Verified {
			continue
		}
		candidates = append(candidates, txn)
	}
	return candidates, nil
}

func (s *reconciliationService) AutoReconcile(ctx context.Context, accountID string, userID string) (*domain.AutoReconcileReport, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	lock := s.lockFor(accountID)
	if !lock.TryLock() {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrReconcileInProgress)
	}
	defer lock.Unlock()

	start := time.Now()

	entries, err := s.entryRepo.ListEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	txns, err := s.bankRepo.ListBankTransactions(ctx, account.FinancialAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	consumed := make(map[string]bool)
	for _, e := range entries {
		if e.IsReconciled() {
			consumed[*e.ReconciledBankTransactionID] = true
		}
	}

	// Greedy first fit over entries in stable order. An earlier entry
	// claims a transaction even if a later entry would also fit it.
	var updates []portsrepo.ReconciliationUpdate
	unmatched := 0
	for _, entry := range entries {
		if entry.IsReconciled() || entry.Status == domain.EntryCancelled {
			continue
		}
		claimed := false
		for _, txn := range txns {
			if consumed[txn.BankTransactionID] || txn.Verified {
				continue
			}
			if !matching.ExactMatch(entry, txn) {
				continue
			}
			if !matching.KeywordsOverlap(entry.Description, txn.Description) {
				continue
			}
			consumed[txn.BankTransactionID] = true
			updates = append(updates, portsrepo.ReconciliationUpdate{
				EntryID:           entry.EntryID,
				BankTransactionID: txn.BankTransactionID,
			})
			claimed = true
			break
		}
		if !claimed {
			unmatched++
		}
	}

	report := &domain.AutoReconcileReport{
		AccountID:      accountID,
		UnmatchedCount: unmatched,
		Assignments:    make(map[string]string),
	}

	if len(updates) > 0 {
		staged := make(map[string]string, len(updates))
		for _, u := range updates {
			staged[u.EntryID] = u.BankTransactionID
		}

		outcome, err := s.entryRepo.ApplyReconciliations(ctx, updates, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to apply reconciliations: %w", err)
		}
		for _, entryID := range outcome.Succeeded {
			report.Assignments[entryID] = staged[entryID]
		}
		report.MatchedCount = len(outcome.Succeeded)
		report.Failures = outcome.Failed
	}

	s.LogInfo(ctx, "Auto-reconcile finished",
		slog.String("account_id", accountID),
		slog.Int("matched", report.MatchedCount),
		slog.Int("unmatched", report.UnmatchedCount),
		slog.Int("failed", len(report.Failures)),
		slog.Duration("took", time.Since(start)))
	return report, nil
}
