package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// ConsolidationSvcFacade computes the forecast-vs-actual comparison report.
type ConsolidationSvcFacade interface {
	// Consolidate recomputes the snapshot for the account from its planned
	// items, ledger entries and bank transactions. Pure with respect to its
	// inputs: identical collections yield an identical snapshot.
	Consolidate(ctx context.Context, accountID string) (*domain.ConsolidationSnapshot, error)
}
