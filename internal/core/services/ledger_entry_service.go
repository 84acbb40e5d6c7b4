package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/google/uuid"
)

// ledgerEntryService implements the LedgerEntrySvcFacade interface. It never
// touches the reconciliation link; that is the reconciliation service's job.
type ledgerEntryService struct {
	BaseService
	entryRepo   portsrepo.LedgerEntryRepositoryFacade
	accountRepo portsrepo.EventAccountReader
}

// NewLedgerEntryService creates a new ledger-entry service
func NewLedgerEntryService(entryRepo portsrepo.LedgerEntryRepositoryFacade, accountRepo portsrepo.EventAccountReader) portssvc.LedgerEntrySvcFacade {
	return &ledgerEntryService{entryRepo: entryRepo, accountRepo: accountRepo}
}

var _ portssvc.LedgerEntrySvcFacade = (*ledgerEntryService)(nil)

func (s *ledgerEntryService) buildEntry(accountID string, req dto.CreateLedgerEntryRequest, userID string, now time.Time) (domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return domain.LedgerEntry{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.FlowType.IsValid() {
		return domain.LedgerEntry{}, fmt.Errorf("%w: invalid flow type %q", apperrors.ErrValidation, req.FlowType)
	}
	return domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       accountID,
		TransactionDate: req.TransactionDate,
		FlowType:        req.FlowType,
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		Counterparty:    req.Counterparty,
		Notes:           req.Notes,
		Status:          domain.EntryPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

func (s *ledgerEntryService) CreateEntry(ctx context.Context, accountID string, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	entry, err := s.buildEntry(accountID, req, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to create ledger entry", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return &entry, nil
}

func (s *ledgerEntryService) CreateEntries(ctx context.Context, accountID string, reqs []dto.CreateLedgerEntryRequest, userID string) (*dto.BatchResultResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	now := time.Now()
	failures := make(map[string]string)
	entries := make([]domain.LedgerEntry, 0, len(reqs))
	for i, req := range reqs {
		entry, err := s.buildEntry(accountID, req, userID, now)
		if err != nil {
			failures[fmt.Sprintf("index_%d", i)] = err.Error()
			continue
		}
		entries = append(entries, entry)
	}

	outcome, err := s.entryRepo.SaveEntries(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to save ledger entries: %w", err)
	}
	for id, itemErr := range outcome.Failed {
		failures[id] = itemErr.Error()
	}

	res := &dto.BatchResultResponse{
		SucceededCount: len(outcome.Succeeded),
		FailedCount:    len(failures),
	}
	if len(failures) > 0 {
		res.Failures = failures
	}
	s.LogInfo(ctx, "Ledger entry bulk create finished",
		slog.String("account_id", accountID),
		slog.Int("succeeded", res.SucceededCount),
		slog.Int("failed", res.FailedCount))
	return res, nil
}

// findOwnedEntry fetches the entry and verifies it belongs to the account.
func (s *ledgerEntryService) findOwnedEntry(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	if entry.AccountID != accountID {
		return nil, fmt.Errorf("ledger entry %s not in account %s: %w", entryID, accountID, apperrors.ErrNotFound)
	}
	return entry, nil
}

func (s *ledgerEntryService) GetEntryByID(ctx context.Context, accountID string, entryID string) (*domain.LedgerEntry, error) {
	return s.findOwnedEntry(ctx, accountID, entryID)
}

func (s *ledgerEntryService) ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	entries, err := s.entryRepo.ListEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		return []domain.LedgerEntry{}, nil
	}
	return entries, nil
}

func (s *ledgerEntryService) UpdateEntry(ctx context.Context, accountID string, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error) {
	entry, err := s.findOwnedEntry(ctx, accountID, entryID)
	if err != nil {
		return nil, err
	}

	// The link asserts a same-day, equal-amount correspondence with a bank
	// transaction; changing either side invalidates it silently.
	if entry.IsReconciled() && (req.Amount != nil || req.TransactionDate != nil) {
		return nil, fmt.Errorf("%w: entry is reconciled; clear the reconciliation before changing its amount or date", apperrors.ErrValidation)
	}

	if req.TransactionDate != nil {
		entry.TransactionDate = req.TransactionDate
	}
	if req.Category != nil {
		if *req.Category == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", apperrors.ErrValidation)
		}
		entry.Category = *req.Category
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		entry.Description = *req.Description
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Counterparty != nil {
		entry.Counterparty = *req.Counterparty
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, *req.Status)
		}
		// A reconciled entry stays completed until the link is cleared.
		if entry.IsReconciled() && *req.Status != domain.EntryCompleted {
			return nil, fmt.Errorf("%w: entry is reconciled; clear the reconciliation before changing status", apperrors.ErrValidation)
		}
		entry.Status = *req.Status
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update ledger entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update ledger entry %s: %w", entryID, err)
	}

	return entry, nil
}

func (s *ledgerEntryService) DeleteEntry(ctx context.Context, accountID string, entryID string) error {
	entry, err := s.findOwnedEntry(ctx, accountID, entryID)
	if err != nil {
		return err
	}
	if entry.IsReconciled() {
		return fmt.Errorf("%w: entry is reconciled; clear the reconciliation before deleting", apperrors.ErrValidation)
	}
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	return nil
}

func (s *ledgerEntryService) DeleteEntries(ctx context.Context, accountID string, entryIDs []string) (*dto.BatchResultResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	failures := make(map[string]string)
	deletable := make([]string, 0, len(entryIDs))
	for _, id := range entryIDs {
		entry, err := s.findOwnedEntry(ctx, accountID, id)
		if err != nil {
			failures[id] = err.Error()
			continue
		}
		if entry.IsReconciled() {
			failures[id] = "entry is reconciled; clear the reconciliation before deleting"
			continue
		}
		deletable = append(deletable, id)
	}

	outcome, err := s.entryRepo.DeleteEntries(ctx, deletable)
	if err != nil {
		return nil, fmt.Errorf("failed to delete ledger entries: %w", err)
	}
	for id, itemErr := range outcome.Failed {
		failures[id] = itemErr.Error()
	}

	res := &dto.BatchResultResponse{
		SucceededCount: len(outcome.Succeeded),
		FailedCount:    len(failures),
	}
	if len(failures) > 0 {
		res.Failures = failures
	}
	s.LogInfo(ctx, "Ledger entry batch delete finished",
		slog.String("account_id", accountID),
		slog.Int("succeeded", res.SucceededCount),
		slog.Int("failed", res.FailedCount))
	return res, nil
}
