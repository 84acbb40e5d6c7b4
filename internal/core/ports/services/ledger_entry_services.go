package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/evtfin/eventfin_backend/internal/dto"
)

// LedgerEntrySvcFacade exposes ledger-entry management. Reconciliation state
// is out of its reach; that belongs to ReconciliationSvcFacade.
type LedgerEntrySvcFacade interface {
	CreateEntry(ctx context.Context, accountID string, req dto.CreateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)
	// CreateEntries performs bulk input, collecting per-item errors.
	CreateEntries(ctx context.Context, accountID string, reqs []dto.CreateLedgerEntryRequest, userID string) (*dto.BatchResultResponse, error)
	GetEntryByID(ctx context.Context, accountID string, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)
	UpdateEntry(ctx context.Context, accountID string, entryID string, req dto.UpdateLedgerEntryRequest, userID string) (*domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, accountID string, entryID string) error
	DeleteEntries(ctx context.Context, accountID string, entryIDs []string) (*dto.BatchResultResponse, error)
}
